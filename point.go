package csvchart

type Point[T, U ScalerConstraint] struct {
	X T
	Y U
}

func NumberPoint(x, y float64) Point[float64, float64] {
	return Point[float64, float64]{
		X: x,
		Y: y,
	}
}
