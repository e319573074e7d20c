package csvchart

import (
	"math"
)

// Bin is a half open interval [First, Last) of the value domain and the
// number of records that fell into it. The last bin of a histogram also
// includes its upper bound.
type Bin struct {
	First float64
	Last  float64
	Count int
}

// Histogram splits the domain covered by values into bins intervals of equal
// width and counts the values falling in each of them. The bin width
// defaults to 1 when all values are equal so that a constant series still
// yields a single populated bin.
func Histogram(values []float64, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, ConfigError{Option: "bins", Value: bins}
	}
	if len(values) == 0 {
		return nil, DomainError{Chart: "histogram", Reason: "no records to bin"}
	}
	fst, lst := values[0], values[0]
	for _, v := range values[1:] {
		if v < fst {
			fst = v
		}
		if v > lst {
			lst = v
		}
	}
	width := (lst - fst) / float64(bins)
	if width == 0 {
		width = 1
	}
	all := make([]Bin, bins)
	for i := range all {
		all[i].First = fst + float64(i)*width
		all[i].Last = all[i].First + width
	}
	for _, v := range values {
		x := int(math.Floor((v - fst) / width))
		if x < 0 {
			x = 0
		}
		if x >= bins {
			x = bins - 1
		}
		all[x].Count++
	}
	return all, nil
}
