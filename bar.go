package csvchart

import (
	"io"
	"strconv"

	"github.com/midbel/svg"
)

const defaultBandPadding = 0.2

// BarChart draws one vertical bar per record, positioned by category on a
// band scale and sized by value.
type BarChart struct {
	Chart
}

func (c BarChart) Render(w io.Writer, records []BarRecord) error {
	prims, x, y, err := c.layout(records)
	if err != nil {
		return err
	}
	var (
		fnt    = c.Theme.font()
		left   = NumberAxis{Orientation: OrientLeft, Ticks: 4, Scaler: y, Format: formatCount, Font: fnt, WithInnerTicks: true, WithLabelTicks: true, WithOuterTicks: true}
		bottom = CategoryAxis{Orientation: OrientBottom, Scaler: x, Font: fnt, WithInnerTicks: true, WithLabelTicks: true}
	)
	return c.render(w, prims, c.leftAxis(left), c.bottomAxis(bottom))
}

func (c BarChart) Layout(records []BarRecord) ([]Primitive, error) {
	prims, _, _, err := c.layout(records)
	return prims, err
}

func (c BarChart) layout(records []BarRecord) ([]Primitive, Band, Scaler[float64], error) {
	if err := c.check(); err != nil {
		return nil, Band{}, nil, err
	}
	if len(records) == 0 {
		return nil, Band{}, nil, DomainError{Chart: "bar", Reason: "no records to plot"}
	}
	var (
		max  float64
		cats []string
		seen = make(map[string]struct{})
	)
	for _, r := range records {
		if r.Value > max {
			max = r.Value
		}
		if _, ok := seen[r.Category]; !ok {
			seen[r.Category] = struct{}{}
			cats = append(cats, r.Category)
		}
	}
	var (
		height = c.DrawingHeight()
		y      = NumberScaler(NumberDomain(max, 0), NewRange(0, height))
		x      = BandScaler(cats, defaultBandPadding, NewRange(0, c.DrawingWidth()))
		fills  = c.Theme.categories()
	)
	prims := make([]Primitive, 0, len(records))
	for _, r := range records {
		top := y.Scale(r.Value)
		prims = append(prims, Rect{
			X:      x.Start(r.Category),
			Y:      top,
			Width:  x.Bandwidth(),
			Height: height - top,
			Fill:   fills.Color(r.Category),
		})
	}
	return prims, x, y, nil
}

func (c Chart) leftAxis(a Axis) svg.Element {
	return a.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
}

func (c Chart) bottomAxis(a Axis) svg.Element {
	return a.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
}

func formatCount(f float64) string {
	return strconv.FormatFloat(f, 'f', 0, 64)
}
