package csvchart

import (
	"io"
)

// HexbinChart bins scatter points into a hexagonal grid laid over the
// plotting area and colors each populated cell by its density on the theme
// ramp.
type HexbinChart struct {
	Chart
	// Radius is the hexagon cell radius in pixels, DefaultHexRadius when
	// left zero.
	Radius float64
}

func (c HexbinChart) Render(w io.Writer, records []HexbinRecord) error {
	prims, x, y, err := c.layout(records)
	if err != nil {
		return err
	}
	if x == nil {
		return c.render(w, prims)
	}
	var (
		fnt    = c.Theme.font()
		left   = NumberAxis{Orientation: OrientLeft, Ticks: 4, Scaler: y, Font: fnt, WithInnerTicks: true, WithLabelTicks: true}
		bottom = NumberAxis{Orientation: OrientBottom, Ticks: 4, Scaler: x, Font: fnt, WithInnerTicks: true, WithLabelTicks: true}
	)
	return c.render(w, prims, c.leftAxis(left), c.bottomAxis(bottom))
}

func (c HexbinChart) Layout(records []HexbinRecord) ([]Primitive, error) {
	prims, _, _, err := c.layout(records)
	return prims, err
}

func (c HexbinChart) layout(records []HexbinRecord) ([]Primitive, Scaler[float64], Scaler[float64], error) {
	if err := c.check(); err != nil {
		return nil, nil, nil, err
	}
	radius := c.Radius
	if radius == 0 {
		radius = DefaultHexRadius
	}
	if radius < 0 {
		return nil, nil, nil, ConfigError{Option: "radius", Value: radius}
	}
	ramp, err := c.Theme.ramp()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil, nil
	}
	xmin, xmax := records[0].X, records[0].X
	ymin, ymax := records[0].Y, records[0].Y
	for _, r := range records[1:] {
		if r.X < xmin {
			xmin = r.X
		}
		if r.X > xmax {
			xmax = r.X
		}
		if r.Y < ymin {
			ymin = r.Y
		}
		if r.Y > ymax {
			ymax = r.Y
		}
	}
	var (
		x = NumberScaler(NumberDomain(xmin, xmax), NewRange(0, c.DrawingWidth()))
		y = NumberScaler(NumberDomain(ymax, ymin), NewRange(0, c.DrawingHeight()))
	)
	points := make([]Point[float64, float64], 0, len(records))
	for _, r := range records {
		points = append(points, NumberPoint(x.Scale(r.X), y.Scale(r.Y)))
	}
	bins, err := Hexbin(points, radius)
	if err != nil {
		return nil, nil, nil, err
	}
	prims := make([]Primitive, 0, len(bins.Cells))
	for _, cell := range bins.Sorted() {
		cx, cy := bins.Grid.Center(cell)
		t := 1.0
		if bins.Lst > bins.Fst {
			t = float64(bins.Cells[cell]-bins.Fst) / float64(bins.Lst-bins.Fst)
		}
		prims = append(prims, Hexagon{
			X:      cx,
			Y:      cy,
			Radius: radius,
			Fill:   ramp.At(t).String(),
		})
	}
	return prims, x, y, nil
}
