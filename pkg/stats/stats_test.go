package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"statplot/pkg/stats"
)

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	testCases := []struct {
		name string
		p    float64
		want float64
	}{
		{name: "minimum", p: 0, want: 1},
		{name: "maximum", p: 1, want: 10},
		{name: "first quartile", p: 0.25, want: 3.25},
		{name: "median", p: 0.5, want: 5.5},
		{name: "third quartile", p: 0.75, want: 7.75},
		{name: "exact order statistic", p: 1.0 / 3.0, want: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stats.Quantile(sorted, tc.p)
			gt.NoError(t, err)
			gt.Equal(t, got, tc.want)
		})
	}

	t.Run("empty slice", func(t *testing.T) {
		_, err := stats.Quantile(nil, 0.5)
		gt.True(t, errors.Is(err, stats.ErrEmptyInput))
	})

	t.Run("gap wider than float64 range", func(t *testing.T) {
		extreme := []float64{-math.MaxFloat64, math.MaxFloat64}

		median, err := stats.Quantile(extreme, 0.5)
		gt.NoError(t, err)
		gt.Equal(t, median, 0.0)

		q1, err := stats.Quantile(extreme, 0.25)
		gt.NoError(t, err)
		gt.True(t, math.Abs(q1-(-0.5*math.MaxFloat64)) <= 1e-12*math.MaxFloat64)

		q3, err := stats.Quantile(extreme, 0.75)
		gt.NoError(t, err)
		gt.True(t, math.Abs(q3-0.5*math.MaxFloat64) <= 1e-12*math.MaxFloat64)
	})

	t.Run("probability out of range", func(t *testing.T) {
		for _, p := range []float64{-0.1, 1.5, math.NaN()} {
			_, err := stats.Quantile(sorted, p)
			gt.True(t, errors.Is(err, stats.ErrInvalidProbability))
		}
	})
}

func TestMedian(t *testing.T) {
	m, err := stats.Median([]float64{3, 1, 2})
	gt.NoError(t, err)
	gt.Equal(t, m, 2.0)

	m, err = stats.Median([]float64{4, 1, 3, 2})
	gt.NoError(t, err)
	gt.Equal(t, m, 2.5)

	_, err = stats.Median(nil)
	gt.Error(t, err)
}

func TestMeanAndMinMax(t *testing.T) {
	gt.Equal(t, stats.Mean([]float64{1, 2, 3, 6}), 3.0)
	gt.Equal(t, stats.Mean(nil), 0.0)

	min, max := stats.MinMax([]float64{3, -1, 7, 2})
	gt.Equal(t, min, -1.0)
	gt.Equal(t, max, 7.0)
}

func TestPaddedExtent(t *testing.T) {
	lo, hi, err := stats.PaddedExtent([]float64{1.5, 6.75, 3.0}, 0.5)
	gt.NoError(t, err)
	gt.Equal(t, lo, 1.0)
	gt.Equal(t, hi, 7.25)

	_, _, err = stats.PaddedExtent(nil, 0.5)
	gt.True(t, errors.Is(err, stats.ErrEmptyInput))

	_, _, err = stats.PaddedExtent([]float64{1, math.NaN()}, 0.5)
	gt.True(t, errors.Is(err, stats.ErrNonFiniteValue))
}
