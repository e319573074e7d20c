package csvchart

import (
	"io"
	"sort"
	"time"

	"github.com/midbel/slices"
)

// LineChart connects all records, sorted ascending by time, into a single
// polyline. Records sharing the same timestamp keep their input order.
type LineChart struct {
	Chart
}

func (c LineChart) Render(w io.Writer, records []LineRecord) error {
	prims, x, y, err := c.layout(records)
	if err != nil {
		return err
	}
	var (
		fnt    = c.Theme.font()
		left   = NumberAxis{Orientation: OrientLeft, Ticks: 4, Scaler: y, Font: fnt, WithInnerTicks: true, WithLabelTicks: true, WithOuterTicks: true}
		bottom = TimeAxis{Orientation: OrientBottom, Ticks: 5, Scaler: x, Font: fnt, WithInnerTicks: true, WithLabelTicks: true}
	)
	return c.render(w, prims, c.leftAxis(left), c.bottomAxis(bottom))
}

func (c LineChart) Layout(records []LineRecord) ([]Primitive, error) {
	prims, _, _, err := c.layout(records)
	return prims, err
}

func (c LineChart) layout(records []LineRecord) ([]Primitive, Scaler[time.Time], Scaler[float64], error) {
	if err := c.check(); err != nil {
		return nil, nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil, DomainError{Chart: "line", Reason: "no records to plot"}
	}
	sorted := make([]LineRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].When.Before(sorted[j].When)
	})

	vmin, vmax := slices.Fst(sorted).Value, slices.Fst(sorted).Value
	for _, r := range slices.Rest(sorted) {
		if r.Value < vmin {
			vmin = r.Value
		}
		if r.Value > vmax {
			vmax = r.Value
		}
	}
	var (
		x = TimeScaler(TimeDomain(slices.Fst(sorted).When, slices.Lst(sorted).When), NewRange(0, c.DrawingWidth()))
		y = NumberScaler(NumberDomain(vmax, vmin), NewRange(0, c.DrawingHeight()))
	)
	points := make([]Point[float64, float64], 0, len(sorted))
	for _, r := range sorted {
		points = append(points, NumberPoint(x.Scale(r.When), y.Scale(r.Value)))
	}
	line := Polyline{
		Points: points,
		Stroke: slices.Fst(c.Theme.categories().palette),
	}
	return []Primitive{line}, x, y, nil
}
