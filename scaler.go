package csvchart

import (
	"time"
)

type ScalerConstraint interface {
	~float64 | ~string | time.Time
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Diff(v time.Time) float64 {
	diff := v.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Extend() float64 {
	diff := t.lst.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Values(c int) []time.Time {
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) mid() float64 {
	return r.F + r.Len()/2
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

// Scale maps the first domain value to the start of the range and the last
// one to its end. A zero extent domain maps everything to the range middle.
func (n numberScaler) Scale(v float64) float64 {
	if n.Extend() == 0 {
		return n.mid()
	}
	return n.Range.Min() + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	if s.Extend() == 0 {
		return s.mid()
	}
	return s.Range.Min() + s.Diff(v)*s.Space()
}

func (s timeScaler) Space() float64 {
	return s.Len() / s.Extend()
}

// Band divides its range into one slot per category and centers a band of
// width slot*(1-padding) within each slot. A category outside of the domain
// falls back to the first slot, it is never rejected.
type Band struct {
	Range
	categories []string
	padding    float64
}

func BandScaler(categories []string, padding float64, rg Range) Band {
	if padding < 0 || padding >= 1 {
		padding = 0
	}
	return Band{
		Range:      rg,
		categories: categories,
		padding:    padding,
	}
}

func (b Band) Scale(v string) float64 {
	var x int
	for i := range b.categories {
		if b.categories[i] == v {
			x = i
			break
		}
	}
	return b.Range.Min() + float64(x)*b.Space()
}

func (b Band) Space() float64 {
	if len(b.categories) == 0 {
		return 0
	}
	return b.Len() / float64(len(b.categories))
}

func (b Band) Bandwidth() float64 {
	return b.Space() * (1 - b.padding)
}

// Start gives the left edge of the band drawn for the given category.
func (b Band) Start(v string) float64 {
	return b.Scale(v) + (b.Space()-b.Bandwidth())/2
}

func (b Band) Values(c int) []string {
	if c > 0 && c < len(b.categories) {
		return b.categories[:c]
	}
	return b.categories
}
