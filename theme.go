package csvchart

import (
	"github.com/midbel/svg"
)

// Theme groups the immutable color and font configuration of a run. It can
// be loaded from a file or from the environment by the caller, the library
// itself never mutates it.
type Theme struct {
	Categorical Palette `yaml:"categorical"`
	Ramp        Palette `yaml:"ramp"`
	Histogram   string  `yaml:"histogram" env:"CSVCHART_HISTOGRAM_FILL"`
	Background  string  `yaml:"background" env:"CSVCHART_BACKGROUND"`
	FontFamily  string  `yaml:"font-family" env:"CSVCHART_FONT_FAMILY"`
	FontSize    float64 `yaml:"font-size" env:"CSVCHART_FONT_SIZE"`
}

func DefaultTheme() Theme {
	return Theme{
		Categorical: Default,
		Ramp:        Blues,
		Histogram:   HistogramFill,
		Background:  "white",
		FontFamily:  "IBM Plex Sans",
		FontSize:    FontSize,
	}
}

func (t Theme) categories() *Categories {
	return NewCategories(t.Categorical)
}

func (t Theme) ramp() (Ramp, error) {
	stops := t.Ramp
	if len(stops) == 0 {
		stops = Blues
	}
	return ParseRamp(stops)
}

func (t Theme) histogramFill() string {
	if t.Histogram == "" {
		return HistogramFill
	}
	return t.Histogram
}

func (t Theme) background() string {
	if t.Background == "" {
		return "white"
	}
	return t.Background
}

func (t Theme) font() svg.Font {
	size := t.FontSize
	if size <= 0 {
		size = FontSize
	}
	if t.FontFamily != "" {
		return svg.NewFont(size, t.FontFamily)
	}
	return svg.NewFont(size)
}
