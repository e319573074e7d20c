package csvchart

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

var DefaultPadding = Padding{
	Top:    20,
	Right:  20,
	Bottom: 40,
	Left:   60,
}

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultBins   = 20
)

// Chart holds the canvas configuration shared by every chart kind.
type Chart struct {
	Width  float64
	Height float64

	Padding

	Theme Theme
}

func New(width, height float64) Chart {
	return Chart{
		Width:   width,
		Height:  height,
		Padding: DefaultPadding,
		Theme:   DefaultTheme(),
	}
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart) check() error {
	if c.Width <= 0 {
		return ConfigError{Option: "width", Value: c.Width}
	}
	if c.Height <= 0 {
		return ConfigError{Option: "height", Value: c.Height}
	}
	return nil
}
