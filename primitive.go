package csvchart

// Primitive is a drawable shape carrying final pixel coordinates and a
// resolved fill. Layouts produce primitives once, the renderer consumes
// them in emission order and never transforms them again.
type Primitive interface {
	primitive()
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
}

func (Rect) primitive() {}

// Wedge is a doughnut slice between Inner and Outer radius, spanning Sweep
// degrees clockwise from Start.
type Wedge struct {
	X     float64
	Y     float64
	Inner float64
	Outer float64
	Start float64
	Sweep float64
	Fill  string
}

func (Wedge) primitive() {}

type Polyline struct {
	Points []Point[float64, float64]
	Stroke string
}

func (Polyline) primitive() {}

// Hexagon is a regular flat top hexagon given by its center and radius.
type Hexagon struct {
	X      float64
	Y      float64
	Radius float64
	Fill   string
}

func (Hexagon) primitive() {}
