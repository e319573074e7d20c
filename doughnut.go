package csvchart

import (
	"io"
	"math"
)

// DoughnutChart lays out one wedge per record, clockwise from 12 o'clock in
// input order, each spanning an angle proportional to its share of the
// total value.
type DoughnutChart struct {
	Chart
	// InnerRatio is the inner radius as a fraction of the outer one. It
	// defaults to one half, zero would make a pie.
	InnerRatio float64
}

func (c DoughnutChart) Render(w io.Writer, records []DoughnutRecord) error {
	prims, err := c.Layout(records)
	if err != nil {
		return err
	}
	return c.render(w, prims)
}

func (c DoughnutChart) Layout(records []DoughnutRecord) ([]Primitive, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, DomainError{Chart: "doughnut", Reason: "no records to plot"}
	}
	var total float64
	for _, r := range records {
		total += r.Value
	}
	if total <= 0 {
		return nil, DomainError{Chart: "doughnut", Reason: "total value must be positive"}
	}
	ratio := c.InnerRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	var (
		outer = math.Min(c.DrawingWidth(), c.DrawingHeight()) / 2 * 0.8
		inner = outer * ratio
		cx    = c.DrawingWidth() / 2
		cy    = c.DrawingHeight() / 2
		part  = fullcircle / total
		angle = -quartercircle
		fills = c.Theme.categories()
	)
	prims := make([]Primitive, 0, len(records))
	for _, r := range records {
		sweep := r.Value * part
		prims = append(prims, Wedge{
			X:     cx,
			Y:     cy,
			Inner: inner,
			Outer: outer,
			Start: angle,
			Sweep: sweep,
			Fill:  fills.Color(r.Category),
		})
		angle += sweep
	}
	return prims, nil
}
