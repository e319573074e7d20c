package csvchart

import (
	"math"
	"sort"
)

var DefaultHexRadius = 20.0

// Axial identifies a cell of a flat top hexagonal grid.
type Axial struct {
	Q int
	R int
}

type HexGrid struct {
	Size float64
}

// At gives the cell whose hexagon contains the given position.
func (g HexGrid) At(x, y float64) Axial {
	var (
		q = (2.0 / 3.0) * x / g.Size
		r = (-1.0/3.0*x + math.Sqrt(3)/3.0*y) / g.Size
	)
	return roundAxial(q, r)
}

// Center gives the position of the middle of a cell.
func (g HexGrid) Center(c Axial) (float64, float64) {
	var (
		x = g.Size * 1.5 * float64(c.Q)
		y = g.Size * math.Sqrt(3) * (float64(c.R) + float64(c.Q)/2)
	)
	return x, y
}

func roundAxial(q, r float64) Axial {
	var (
		x = q
		z = r
		y = -x - z

		rx = math.Round(x)
		ry = math.Round(y)
		rz = math.Round(z)

		dx = math.Abs(rx - x)
		dy = math.Abs(ry - y)
		dz = math.Abs(rz - z)
	)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
	default:
		rz = -rx - ry
	}
	return Axial{
		Q: int(rx),
		R: int(rz),
	}
}

// HexBins holds the populated cells of a grid and the smallest and largest
// count observed across them. Empty cells are not materialized.
type HexBins struct {
	Grid  HexGrid
	Cells map[Axial]int
	Fst   int
	Lst   int
}

// Hexbin accumulates points into the cells of a flat top hexagonal grid of
// the given cell radius. Points are expected in the same coordinate space as
// the grid, every point lands in exactly one cell.
func Hexbin(points []Point[float64, float64], size float64) (HexBins, error) {
	if size <= 0 {
		return HexBins{}, ConfigError{Option: "radius", Value: size}
	}
	bins := HexBins{
		Grid:  HexGrid{Size: size},
		Cells: make(map[Axial]int),
	}
	for _, pt := range points {
		bins.Cells[bins.Grid.At(pt.X, pt.Y)]++
	}
	var first bool
	for _, c := range bins.Cells {
		if !first {
			bins.Fst, bins.Lst = c, c
			first = true
			continue
		}
		if c < bins.Fst {
			bins.Fst = c
		}
		if c > bins.Lst {
			bins.Lst = c
		}
	}
	return bins, nil
}

// Sorted gives the populated cells in a reproducible order.
func (b HexBins) Sorted() []Axial {
	all := make([]Axial, 0, len(b.Cells))
	for c := range b.Cells {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Q != all[j].Q {
			return all[i].Q < all[j].Q
		}
		return all[i].R < all[j].R
	})
	return all
}
