package csvchart

import (
	"errors"
	"testing"
)

func TestHistogramChartLayout(t *testing.T) {
	ch := HistogramChart{Chart: New(800, 600), Bins: 3}
	records := []HistogramRecord{
		{Ident: "1", Value: 1},
		{Ident: "2", Value: 1},
		{Ident: "3", Value: 1},
		{Ident: "4", Value: 2},
		{Ident: "5", Value: 2},
		{Ident: "6", Value: 3},
	}
	prims, err := ch.Layout(records)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 3 {
		t.Fatalf("want 3 rectangles, got %d primitives", len(prims))
	}
	var (
		height = ch.DrawingHeight()
		want   = []float64{height, height * 2 / 3, height / 3}
	)
	for i, p := range prims {
		r, ok := p.(Rect)
		if !ok {
			t.Fatalf("primitive %d: want Rect, got %T", i, p)
		}
		if !closeTo(r.Height, want[i]) {
			t.Errorf("bin %d: want height %f, got %f", i, want[i], r.Height)
		}
		if r.Fill != HistogramFill {
			t.Errorf("bin %d: want fixed fill %s, got %s", i, HistogramFill, r.Fill)
		}
	}
}

func TestHistogramChartSingleRecord(t *testing.T) {
	ch := HistogramChart{Chart: New(800, 600), Bins: 20}
	prims, err := ch.Layout([]HistogramRecord{{Ident: "1", Value: 5}})
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 20 {
		t.Fatalf("want 20 rectangles, got %d primitives", len(prims))
	}
	var populated int
	for i, p := range prims {
		r := p.(Rect)
		if r.Height > 0 {
			populated++
			if i != 0 {
				t.Errorf("only the first bin should be populated, bin %d is not empty", i)
			}
		}
	}
	if populated != 1 {
		t.Errorf("want exactly one populated bin, got %d", populated)
	}
}

func TestHistogramChartErrors(t *testing.T) {
	ch := HistogramChart{Chart: New(800, 600), Bins: 10}
	_, err := ch.Layout(nil)
	var derr DomainError
	if !errors.As(err, &derr) {
		t.Errorf("want DomainError for empty input, got %v", err)
	}
	ch.Bins = -1
	_, err = ch.Layout([]HistogramRecord{{Ident: "1", Value: 5}})
	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("want ConfigError for negative bins, got %v", err)
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
