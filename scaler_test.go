package csvchart

import (
	"math"
	"testing"
	"time"
)

func TestNumberScaler(t *testing.T) {
	s := NumberScaler(NumberDomain(0, 10), NewRange(0, 800))
	if got := s.Scale(0); got != 0 {
		t.Errorf("scale(0): want 0, got %f", got)
	}
	if got := s.Scale(10); got != 800 {
		t.Errorf("scale(10): want 800, got %f", got)
	}
	prev := math.Inf(-1)
	for v := 0.0; v <= 10; v += 0.5 {
		got := s.Scale(v)
		if got < prev {
			t.Fatalf("scale not monotonic at %f: %f < %f", v, got, prev)
		}
		prev = got
	}
}

func TestNumberScalerInverted(t *testing.T) {
	s := NumberScaler(NumberDomain(100, 0), NewRange(0, 600))
	if got := s.Scale(100); got != 0 {
		t.Errorf("scale(100): want 0, got %f", got)
	}
	if got := s.Scale(0); got != 600 {
		t.Errorf("scale(0): want 600, got %f", got)
	}
}

func TestNumberScalerDegenerate(t *testing.T) {
	s := NumberScaler(NumberDomain(5, 5), NewRange(0, 800))
	for _, v := range []float64{-10, 0, 5, 123} {
		if got := s.Scale(v); got != 400 {
			t.Errorf("scale(%f): want range middle 400, got %f", v, got)
		}
	}
}

func TestTimeScaler(t *testing.T) {
	var (
		fst = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		lst = time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC)
		s   = TimeScaler(TimeDomain(fst, lst), NewRange(0, 100))
	)
	if got := s.Scale(fst); got != 0 {
		t.Errorf("scale(first): want 0, got %f", got)
	}
	if got := s.Scale(lst); got != 100 {
		t.Errorf("scale(last): want 100, got %f", got)
	}
	mid := fst.Add(lst.Sub(fst) / 2)
	if got := s.Scale(mid); math.Abs(got-50) > 1e-9 {
		t.Errorf("scale(middle): want 50, got %f", got)
	}
	deg := TimeScaler(TimeDomain(fst, fst), NewRange(0, 100))
	if got := deg.Scale(lst); got != 50 {
		t.Errorf("degenerate scale: want range middle 50, got %f", got)
	}
}

func TestBandScaler(t *testing.T) {
	var (
		cats = []string{"a", "b", "c"}
		b    = BandScaler(cats, 0.2, NewRange(0, 300))
	)
	if got := b.Space(); got != 100 {
		t.Fatalf("space: want 100, got %f", got)
	}
	if got := b.Bandwidth(); math.Abs(got-80) > 1e-9 {
		t.Fatalf("bandwidth: want 80, got %f", got)
	}
	// slots cover the whole range, bands never overlap
	total := b.Bandwidth() * float64(len(cats))
	total += (b.Space() - b.Bandwidth()) * float64(len(cats))
	if math.Abs(total-b.Len()) > 1e-9 {
		t.Errorf("bands and paddings should cover the range: want %f, got %f", b.Len(), total)
	}
	for i := 1; i < len(cats); i++ {
		var (
			prev = b.Start(cats[i-1]) + b.Bandwidth()
			next = b.Start(cats[i])
		)
		if prev > next+1e-9 {
			t.Errorf("bands %s and %s overlap: %f > %f", cats[i-1], cats[i], prev, next)
		}
	}
}

func TestBandScalerUnknownCategory(t *testing.T) {
	b := BandScaler([]string{"a", "b"}, 0, NewRange(0, 200))
	if got := b.Scale("zzz"); got != 0 {
		t.Errorf("unknown category should use the first slot, got %f", got)
	}
}
