package csvchart

import (
	"errors"
	"math"
	"testing"
)

func TestHistogram(t *testing.T) {
	values := []float64{1, 1, 1, 2, 2, 3}
	bins, err := Histogram(values, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(bins) != 3 {
		t.Fatalf("want 3 bins, got %d", len(bins))
	}
	var (
		width  = 2.0 / 3.0
		counts = []int{3, 2, 1}
	)
	for i, b := range bins {
		first := 1 + float64(i)*width
		if math.Abs(b.First-first) > 1e-9 || math.Abs(b.Last-(first+width)) > 1e-9 {
			t.Errorf("bin %d: want [%f, %f], got [%f, %f]", i, first, first+width, b.First, b.Last)
		}
		if b.Count != counts[i] {
			t.Errorf("bin %d: want count %d, got %d", i, counts[i], b.Count)
		}
	}
}

func TestHistogramCounts(t *testing.T) {
	data := []struct {
		Name   string
		Values []float64
		Bins   int
	}{
		{Name: "uniform", Values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Bins: 4},
		{Name: "single", Values: []float64{42}, Bins: 20},
		{Name: "constant", Values: []float64{5, 5, 5, 5}, Bins: 7},
		{Name: "one-bin", Values: []float64{-3, 0.5, 11, 7}, Bins: 1},
		{Name: "negative", Values: []float64{-10, -5, -1}, Bins: 3},
	}
	for _, d := range data {
		bins, err := Histogram(d.Values, d.Bins)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Name, err)
			continue
		}
		if len(bins) != d.Bins {
			t.Errorf("%s: want %d bins, got %d", d.Name, d.Bins, len(bins))
		}
		var total int
		for _, b := range bins {
			total += b.Count
		}
		if total != len(d.Values) {
			t.Errorf("%s: counts should sum to %d, got %d", d.Name, len(d.Values), total)
		}
	}
}

func TestHistogramConstant(t *testing.T) {
	bins, err := Histogram([]float64{5}, 20)
	if err != nil {
		t.Fatal(err)
	}
	if bins[0].Count != 1 {
		t.Errorf("first bin should hold the single record, got %d", bins[0].Count)
	}
	for i, b := range bins[1:] {
		if b.Count != 0 {
			t.Errorf("bin %d should be empty, got %d", i+1, b.Count)
		}
	}
}

func TestHistogramErrors(t *testing.T) {
	_, err := Histogram([]float64{1, 2}, 0)
	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("want ConfigError for zero bins, got %v", err)
	}
	_, err = Histogram(nil, 10)
	var derr DomainError
	if !errors.As(err, &derr) {
		t.Errorf("want DomainError for empty input, got %v", err)
	}
}
