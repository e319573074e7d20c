package csvchart

import (
	"io"

	"github.com/midbel/slices"
)

// HistogramChart draws the distribution of a single numeric column as
// equal width bins. Every bin shares the same fill, zero count bins still
// produce a zero height rectangle.
type HistogramChart struct {
	Chart
	Bins int
}

func (c HistogramChart) Render(w io.Writer, records []HistogramRecord) error {
	prims, x, y, err := c.layout(records)
	if err != nil {
		return err
	}
	var (
		fnt    = c.Theme.font()
		left   = NumberAxis{Orientation: OrientLeft, Ticks: 4, Scaler: y, Format: formatCount, Font: fnt, WithInnerTicks: true, WithLabelTicks: true, WithOuterTicks: true}
		bottom = NumberAxis{Orientation: OrientBottom, Ticks: 5, Scaler: x, Font: fnt, WithInnerTicks: true, WithLabelTicks: true}
	)
	return c.render(w, prims, c.leftAxis(left), c.bottomAxis(bottom))
}

func (c HistogramChart) Layout(records []HistogramRecord) ([]Primitive, error) {
	prims, _, _, err := c.layout(records)
	return prims, err
}

func (c HistogramChart) layout(records []HistogramRecord) ([]Primitive, Scaler[float64], Scaler[float64], error) {
	if err := c.check(); err != nil {
		return nil, nil, nil, err
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	bins, err := Histogram(values, c.Bins)
	if err != nil {
		return nil, nil, nil, err
	}
	var max int
	for _, b := range bins {
		if b.Count > max {
			max = b.Count
		}
	}
	// the scale domain runs over the bin edges, which coincide with the
	// value domain except when all values are equal
	var (
		height = c.DrawingHeight()
		x      = NumberScaler(NumberDomain(slices.Fst(bins).First, slices.Lst(bins).Last), NewRange(0, c.DrawingWidth()))
		y      = NumberScaler(NumberDomain(float64(max), 0), NewRange(0, height))
		fill   = c.Theme.histogramFill()
	)
	prims := make([]Primitive, 0, len(bins))
	for _, b := range bins {
		var (
			x0  = x.Scale(b.First)
			x1  = x.Scale(b.Last)
			top = y.Scale(float64(b.Count))
		)
		prims = append(prims, Rect{
			X:      x0,
			Y:      top,
			Width:  x1 - x0,
			Height: height - top,
			Fill:   fill,
		})
	}
	return prims, x, y, nil
}
