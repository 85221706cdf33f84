package stats

import (
	"log/slog"
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
)

// FenceFactor is the IQR multiplier for Tukey fences.
const FenceFactor = 1.5

// Summary is the box-and-whisker description of one group of values.
// LowerFence and UpperFence are Tukey fences, not the data extrema.
type Summary struct {
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	IQR        float64 `json:"iqr"`
	LowerFence float64 `json:"lowerFence"`
	UpperFence float64 `json:"upperFence"`
}

// Summarize computes quartiles, IQR and Tukey fences of values. The input is
// left untouched; it must be non-empty and contain only finite numbers.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, goerr.Wrap(ErrEmptyInput, "cannot summarize")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Summary{}, goerr.Wrap(ErrNonFiniteValue, "cannot summarize",
				goerr.V("index", i),
				goerr.V("value", v))
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	// sorted is non-empty and p is in range, so Quantile cannot fail here.
	q1, _ := Quantile(sorted, 0.25)
	median, _ := Quantile(sorted, 0.5)
	q3, _ := Quantile(sorted, 0.75)
	iqr := q3 - q1

	// float64 conversions keep the fence arithmetic from being fused into FMA.
	s := Summary{
		Q1:         q1,
		Median:     median,
		Q3:         q3,
		IQR:        iqr,
		LowerFence: q1 - float64(FenceFactor*iqr),
		UpperFence: q3 + float64(FenceFactor*iqr),
	}
	if math.IsInf(s.IQR, 0) || math.IsInf(s.LowerFence, 0) || math.IsInf(s.UpperFence, 0) {
		return Summary{}, goerr.Wrap(ErrOverflow, "cannot summarize",
			goerr.V("min", sorted[0]),
			goerr.V("max", sorted[len(sorted)-1]))
	}
	return s, nil
}

// LogValue returns structured log value
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("q1", s.Q1),
		slog.Float64("median", s.Median),
		slog.Float64("q3", s.Q3),
		slog.Float64("iqr", s.IQR),
		slog.Float64("lower_fence", s.LowerFence),
		slog.Float64("upper_fence", s.UpperFence),
	)
}
