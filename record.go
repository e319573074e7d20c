package csvchart

import (
	"time"
)

// The record types below are the typed, already validated rows each chart
// consumes. Coercion from raw text happens at the boundary, in the decode
// package, so that the layouts only ever see well formed values.

type BarRecord struct {
	Ident    string
	Category string
	Value    float64
}

type HistogramRecord struct {
	Ident string
	Value float64
}

type LineRecord struct {
	Ident string
	When  time.Time
	Value float64
}

type DoughnutRecord struct {
	Ident    string
	Category string
	Value    float64
}

type HexbinRecord struct {
	Ident string
	X     float64
	Y     float64
}
