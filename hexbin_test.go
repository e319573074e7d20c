package csvchart

import (
	"errors"
	"testing"
)

func TestHexbinTotal(t *testing.T) {
	var points []Point[float64, float64]
	for i := 0; i < 50; i++ {
		x := float64(i%10) * 13
		y := float64(i/10) * 7
		points = append(points, NumberPoint(x, y))
	}
	bins, err := Hexbin(points, 20)
	if err != nil {
		t.Fatal(err)
	}
	var total int
	for _, c := range bins.Cells {
		total += c
	}
	if total != len(points) {
		t.Errorf("cell counts should sum to %d, got %d", len(points), total)
	}
	if bins.Fst < 1 || bins.Lst < bins.Fst {
		t.Errorf("invalid count bounds: min %d, max %d", bins.Fst, bins.Lst)
	}
}

func TestHexGridRoundTrip(t *testing.T) {
	grid := HexGrid{Size: 20}
	cells := []Axial{
		{Q: 0, R: 0},
		{Q: 1, R: 0},
		{Q: 0, R: 1},
		{Q: -3, R: 2},
		{Q: 5, R: -4},
	}
	for _, c := range cells {
		x, y := grid.Center(c)
		if got := grid.At(x, y); got != c {
			t.Errorf("cell center should map back to its cell: want %v, got %v", c, got)
		}
	}
}

func TestHexbinSorted(t *testing.T) {
	points := []Point[float64, float64]{
		NumberPoint(0, 0),
		NumberPoint(100, 0),
		NumberPoint(0, 100),
	}
	bins, err := Hexbin(points, 10)
	if err != nil {
		t.Fatal(err)
	}
	cells := bins.Sorted()
	if len(cells) != len(bins.Cells) {
		t.Fatalf("want %d cells, got %d", len(bins.Cells), len(cells))
	}
	for i := 1; i < len(cells); i++ {
		prev, curr := cells[i-1], cells[i]
		if prev.Q > curr.Q || (prev.Q == curr.Q && prev.R >= curr.R) {
			t.Errorf("cells not in order: %v before %v", prev, curr)
		}
	}
}

func TestHexbinInvalidRadius(t *testing.T) {
	_, err := Hexbin(nil, 0)
	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("want ConfigError for zero radius, got %v", err)
	}
}
