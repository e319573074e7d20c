package csvchart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Color struct {
	R uint8
	G uint8
	B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c Color) lerp(other Color, t float64) Color {
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

func lerpChannel(f, t uint8, x float64) uint8 {
	return uint8(math.Round(float64(f) + (float64(t)-float64(f))*x))
}

// ParseColor accepts #rrggbb and rgb(r,g,b) notations.
func ParseColor(str string) (Color, error) {
	str = strings.TrimSpace(str)
	switch {
	case strings.HasPrefix(str, "#"):
		return parseHexColor(strings.TrimPrefix(str, "#"))
	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		str = strings.TrimSuffix(strings.TrimPrefix(str, "rgb("), ")")
		return parseRGBColor(str)
	default:
		return Color{}, fmt.Errorf("%s: unsupported color notation", str)
	}
}

func parseHexColor(str string) (Color, error) {
	if len(str) != 6 {
		return Color{}, fmt.Errorf("#%s: unsupported color notation", str)
	}
	v, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("#%s: unsupported color notation", str)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func parseRGBColor(str string) (Color, error) {
	parts := strings.Split(str, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("rgb(%s): unsupported color notation", str)
	}
	var chans [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("rgb(%s): unsupported color notation", str)
		}
		chans[i] = uint8(v)
	}
	return Color{R: chans[0], G: chans[1], B: chans[2]}, nil
}

// Ramp interpolates linearly between a list of evenly spaced color stops.
type Ramp []Color

func ParseRamp(stops Palette) (Ramp, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("ramp: no color stops given")
	}
	all := make(Ramp, 0, len(stops))
	for _, s := range stops {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		all = append(all, c)
	}
	return all, nil
}

// At resolves the color at position t. Values outside of [0, 1] are clamped.
func (r Ramp) At(t float64) Color {
	switch len(r) {
	case 0:
		return Color{}
	case 1:
		return r[0]
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var (
		pos = t * float64(len(r)-1)
		ix  = int(math.Floor(pos))
	)
	if ix >= len(r)-1 {
		return r[len(r)-1]
	}
	return r[ix].lerp(r[ix+1], pos-float64(ix))
}

// Categories assigns palette colors to category labels in first seen order,
// cycling through the palette when labels outnumber its colors. Within one
// run the same label always resolves to the same color.
type Categories struct {
	palette Palette
	seen    map[string]int
}

func NewCategories(palette Palette) *Categories {
	if len(palette) == 0 {
		palette = Default
	}
	return &Categories{
		palette: palette,
		seen:    make(map[string]int),
	}
}

func (c *Categories) Color(label string) string {
	x, ok := c.seen[label]
	if !ok {
		x = len(c.seen)
		c.seen[label] = x
	}
	return c.palette[x%len(c.palette)]
}
