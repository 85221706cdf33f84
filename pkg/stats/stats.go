package stats

import (
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Quantile returns the p-quantile (0 <= p <= 1) of an ascending sorted slice
// using linear interpolation between order statistics (R-7).
func Quantile(sorted []float64, p float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, goerr.Wrap(ErrEmptyInput, "quantile of empty slice")
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, goerr.Wrap(ErrInvalidProbability, "quantile probability out of range", goerr.V("p", p))
	}

	index := p * float64(n-1)
	lo := int(math.Floor(index))
	hi := int(math.Ceil(index))
	frac := index - float64(lo)
	if frac == 0 {
		return sorted[lo], nil
	}

	v := sorted[lo] + float64(frac*(sorted[hi]-sorted[lo]))
	if d := sorted[hi] - sorted[lo]; math.IsInf(d, 0) {
		// the gap overflows near ±MaxFloat64; weight each end instead
		v = float64(sorted[lo]*(1-frac)) + float64(sorted[hi]*frac)
	}
	// rounding must not push the estimate past its neighbours
	// (q1 <= median <= q3 relies on it)
	if v < sorted[lo] {
		return sorted[lo], nil
	}
	if v > sorted[hi] {
		return sorted[hi], nil
	}
	return v, nil
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) (float64, error) {
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)
	return Quantile(cp, 0.5)
}
