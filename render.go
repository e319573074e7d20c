package csvchart

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const (
	fullcircle    = 360.0
	halfcircle    = 180.0
	quartercircle = 90.0
	deg2rad       = math.Pi / halfcircle
)

// render serializes the canvas and the given primitives, in their emission
// order, into a self contained SVG document. Axis elements are drawn below
// the plotting area group.
func (c Chart) render(w io.Writer, prims []Primitive, axes ...svg.Element) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)

	var bg svg.Rect
	bg.Dim = svg.NewDim(c.Width, c.Height)
	bg.Fill = svg.NewFill(c.Theme.background())
	el.Append(bg.AsElement())

	for _, a := range axes {
		el.Append(a)
	}

	var area svg.Group
	area.Id = "area"
	area.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	for _, p := range prims {
		area.Append(elementOf(p))
	}
	el.Append(area.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func elementOf(p Primitive) svg.Element {
	switch p := p.(type) {
	case Rect:
		return rectElement(p)
	case Wedge:
		return wedgeElement(p)
	case Polyline:
		return polylineElement(p)
	case Hexagon:
		return hexagonElement(p)
	default:
		return nil
	}
}

func rectElement(r Rect) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.Width, r.Height)
	el.Fill = svg.NewFill(r.Fill)
	return el.AsElement()
}

func wedgeElement(w Wedge) svg.Element {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(w.Fill)

	angles := arcAngles(w.Start, w.Sweep)
	pat.AbsMoveTo(posFromAngle(w.Start*deg2rad, w.Outer, w.X, w.Y))
	prev := w.Start
	for _, a := range angles {
		pat.AbsArcTo(posFromAngle(a*deg2rad, w.Outer, w.X, w.Y), w.Outer, w.Outer, 0, a-prev > halfcircle, true)
		prev = a
	}
	pat.AbsLineTo(posFromAngle(prev*deg2rad, w.Inner, w.X, w.Y))
	for i := len(angles) - 2; i >= -1; i-- {
		a := w.Start
		if i >= 0 {
			a = angles[i]
		}
		pat.AbsArcTo(posFromAngle(a*deg2rad, w.Inner, w.X, w.Y), w.Inner, w.Inner, 0, prev-a > halfcircle, false)
		prev = a
	}
	pat.ClosePath()
	return pat.AsElement()
}

// arcAngles gives the endpoint, in degrees, of each arc needed to trace the
// sweep. A single arc covering the full circle would end on its own start
// point and draw nothing, so such sweeps are cut into two half circles.
func arcAngles(start, sweep float64) []float64 {
	if sweep >= fullcircle {
		return []float64{start + halfcircle, start + fullcircle}
	}
	return []float64{start + sweep}
}

func polylineElement(p Polyline) svg.Element {
	pat := getBasePath(p.Stroke)
	if len(p.Points) == 0 {
		return pat.AsElement()
	}
	fst := slices.Fst(p.Points)
	pat.AbsMoveTo(svg.NewPos(fst.X, fst.Y))
	for _, pt := range slices.Rest(p.Points) {
		pat.AbsLineTo(svg.NewPos(pt.X, pt.Y))
	}
	return pat.AsElement()
}

func hexagonElement(h Hexagon) svg.Element {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(h.Fill)
	pat.Stroke = svg.NewStroke("white", 0.5)

	pat.AbsMoveTo(posFromAngle(0, h.Radius, h.X, h.Y))
	for i := 1; i < 6; i++ {
		rad := float64(i) * 60 * deg2rad
		pat.AbsLineTo(posFromAngle(rad, h.Radius, h.X, h.Y))
	}
	pat.ClosePath()
	return pat.AsElement()
}

func getBasePath(stroke string) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(stroke, 2)
	return pat
}

func posFromAngle(angle, radius, cx, cy float64) svg.Pos {
	var (
		x = cx + radius*math.Cos(angle)
		y = cy + radius*math.Sin(angle)
	)
	return svg.NewPos(x, y)
}
