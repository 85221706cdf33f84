package stats

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// PaddedExtent returns [min - pad, max + pad] over values, used as an axis domain.
func PaddedExtent(values []float64, pad float64) (float64, float64, error) {
	if len(values) == 0 {
		return 0, 0, goerr.Wrap(ErrEmptyInput, "extent of empty slice")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, goerr.Wrap(ErrNonFiniteValue, "extent of non-finite value",
				goerr.V("index", i),
				goerr.V("value", v))
		}
	}
	min, max := MinMax(values)
	return min - pad, max + pad, nil
}
