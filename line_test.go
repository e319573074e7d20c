package csvchart

import (
	"errors"
	"testing"
	"time"
)

func TestLineChartLayout(t *testing.T) {
	var (
		ch   = LineChart{Chart: New(800, 600)}
		base = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	)
	records := []LineRecord{
		{Ident: "1", When: base.AddDate(0, 0, 2), Value: 30},
		{Ident: "2", When: base, Value: 10},
		{Ident: "3", When: base.AddDate(0, 0, 1), Value: 20},
	}
	prims, err := ch.Layout(records)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 1 {
		t.Fatalf("want a single polyline, got %d primitives", len(prims))
	}
	line, ok := prims[0].(Polyline)
	if !ok {
		t.Fatalf("want Polyline, got %T", prims[0])
	}
	if len(line.Points) != len(records) {
		t.Fatalf("want %d points, got %d", len(records), len(line.Points))
	}
	for i := 1; i < len(line.Points); i++ {
		if line.Points[i].X <= line.Points[i-1].X {
			t.Errorf("points should be in time order: point %d at %f after %f", i, line.Points[i].X, line.Points[i-1].X)
		}
	}
	if got := line.Points[0].X; got != 0 {
		t.Errorf("earliest record should sit at the range start, got %f", got)
	}
	if got := line.Points[len(line.Points)-1].X; got != ch.DrawingWidth() {
		t.Errorf("latest record should sit at the range end, got %f", got)
	}
}

func TestLineChartTies(t *testing.T) {
	var (
		ch   = LineChart{Chart: New(800, 600)}
		base = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	)
	records := []LineRecord{
		{Ident: "1", When: base, Value: 100},
		{Ident: "2", When: base, Value: 0},
		{Ident: "3", When: base.AddDate(0, 0, 1), Value: 50},
	}
	prims, err := ch.Layout(records)
	if err != nil {
		t.Fatal(err)
	}
	line := prims[0].(Polyline)
	// records sharing a timestamp keep their input order: the first one
	// carries the highest value and so the smallest pixel y
	if line.Points[0].Y >= line.Points[1].Y {
		t.Errorf("tied records should keep input order: %f >= %f", line.Points[0].Y, line.Points[1].Y)
	}
}

func TestLineChartSingleRecord(t *testing.T) {
	ch := LineChart{Chart: New(800, 600)}
	records := []LineRecord{
		{Ident: "1", When: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Value: 5},
	}
	prims, err := ch.Layout(records)
	if err != nil {
		t.Fatal(err)
	}
	line := prims[0].(Polyline)
	if len(line.Points) != 1 {
		t.Fatalf("want 1 point, got %d", len(line.Points))
	}
	if got := line.Points[0].X; got != ch.DrawingWidth()/2 {
		t.Errorf("degenerate time domain should map to the range middle, got %f", got)
	}
	if got := line.Points[0].Y; got != ch.DrawingHeight()/2 {
		t.Errorf("degenerate value domain should map to the range middle, got %f", got)
	}
}

func TestLineChartNoRecords(t *testing.T) {
	ch := LineChart{Chart: New(800, 600)}
	_, err := ch.Layout(nil)
	var derr DomainError
	if !errors.As(err, &derr) {
		t.Errorf("want DomainError, got %v", err)
	}
}
