package csvchart

import (
	"strconv"
	"time"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(length, size, left, top float64) svg.Element
}

type NumberAxis struct {
	Orientation
	Ticks          int
	Scaler         Scaler[float64]
	Format         func(float64) string
	Font           svg.Font
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	var g svg.Group
	g.Transform = svg.Translate(left, top)
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	format := a.Format
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 1, 64)
		}
	}
	for i, f := range a.Scaler.Values(a.Ticks) {
		pos := a.Scaler.Scale(f)
		var grp svg.Group
		grp.Transform = svg.Translate(pos, 0)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), 0, a.Font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks && i > 0 {
			sk := d.Stroke
			sk.Opacity = 0.05
			tick := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

type TimeAxis struct {
	Orientation
	Ticks          int
	Scaler         Scaler[time.Time]
	Format         func(time.Time) string
	Font           svg.Font
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a TimeAxis) Render(length, size, left, top float64) svg.Element {
	var g svg.Group
	g.Transform = svg.Translate(left, top)
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	format := a.Format
	if format == nil {
		format = func(t time.Time) string {
			return t.Format("2006-01-02")
		}
	}
	for _, t := range a.Scaler.Values(a.Ticks) {
		pos := a.Scaler.Scale(t)
		var grp svg.Group
		grp.Transform = svg.Translate(pos, 0)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(t), 0, a.Font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

type CategoryAxis struct {
	Orientation
	Scaler         Scaler[string]
	Font           svg.Font
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a CategoryAxis) Render(length, size, left, top float64) svg.Element {
	var g svg.Group
	g.Transform = svg.Translate(left, top)
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	align := a.Scaler.Space() / 2
	for _, s := range a.Scaler.Values(0) {
		pos := a.Scaler.Scale(s)
		var grp svg.Group
		grp.Transform = svg.Translate(pos, 0)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, align, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, s, align, a.Font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
