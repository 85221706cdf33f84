package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"statplot/pkg/data"
	"statplot/pkg/dataprep"
	"statplot/pkg/pipeline"
	"statplot/pkg/stats"
)

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps group order", func(t *testing.T) {
		var groups []dataprep.Group
		for i := 0; i < 50; i++ {
			groups = append(groups, dataprep.Group{
				Category: fmt.Sprintf("c%02d", i),
				Values:   []float64{float64(i), float64(i + 1), float64(i + 2)},
			})
		}

		res, err := pipeline.NewPipeline(pipeline.WithWorkers(4)).Run(ctx, groups)
		gt.NoError(t, err)
		gt.Equal(t, len(res.Summaries), 50)
		gt.Equal(t, len(res.Failures), 0)
		for i, s := range res.Summaries {
			gt.Equal(t, s.Category, fmt.Sprintf("c%02d", i))
			gt.Equal(t, s.Count, 3)
			gt.Equal(t, s.Summary.Median, float64(i+1))
			gt.Equal(t, s.Mean, float64(i+1))
		}
	})

	t.Run("failing groups do not stop the others", func(t *testing.T) {
		groups := []dataprep.Group{
			{Category: "setosa", Values: []float64{1.4, 1.3, 1.5}},
			{Category: "empty", Values: nil},
			{Category: "poisoned", Values: []float64{1, math.NaN()}},
			{Category: "virginica", Values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		}

		res, err := pipeline.NewPipeline().Run(ctx, groups)
		gt.NoError(t, err)

		gt.Equal(t, len(res.Summaries), 2)
		gt.Equal(t, res.Summaries[0].Category, "setosa")
		gt.Equal(t, res.Summaries[1].Category, "virginica")
		gt.Equal(t, res.Summaries[1].Summary, stats.Summary{
			Q1: 3.25, Median: 5.5, Q3: 7.75, IQR: 4.5, LowerFence: -3.5, UpperFence: 14.5,
		})

		gt.Equal(t, len(res.Failures), 2)
		gt.Equal(t, res.Failures[0].Category, "empty")
		gt.True(t, errors.Is(res.Failures[0].Err, stats.ErrEmptyInput))
		gt.Equal(t, res.Failures[1].Category, "poisoned")
		gt.True(t, errors.Is(res.Failures[1].Err, stats.ErrNonFiniteValue))
	})

	t.Run("outliers are reported", func(t *testing.T) {
		groups := []dataprep.Group{
			{Category: "a", Values: []float64{-20, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 30}},
		}
		res, err := pipeline.NewPipeline(pipeline.WithWorkers(1)).Run(ctx, groups)
		gt.NoError(t, err)
		gt.Equal(t, res.Summaries[0].Outliers, []float64{-20, 30})
	})

	t.Run("canceled context aborts", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := pipeline.NewPipeline().Run(cctx, []dataprep.Group{
			{Category: "a", Values: []float64{1}},
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("no groups", func(t *testing.T) {
		res, err := pipeline.NewPipeline(pipeline.WithWorkers(-1)).Run(ctx, nil)
		gt.NoError(t, err)
		gt.Equal(t, len(res.Summaries), 0)
	})
}

func TestSummarizeTable(t *testing.T) {
	ctx := context.Background()
	in := `Species,PetalLength
setosa,1.4
setosa,1.3
versicolor,4.7
setosa,oops
versicolor,4.5
versicolor,
`
	tbl, err := data.Load(ctx, strings.NewReader(in))
	gt.NoError(t, err)

	schema := pipeline.Schema{Category: "Species", Value: "PetalLength"}
	res, err := pipeline.NewPipeline().SummarizeTable(ctx, tbl, schema)
	gt.NoError(t, err)
	gt.Equal(t, len(res.Summaries), 2)
	gt.Equal(t, res.Summaries[0].Category, "setosa")
	gt.Equal(t, res.Summaries[0].Count, 2)
	gt.Equal(t, res.Summaries[1].Category, "versicolor")
	gt.Equal(t, res.Summaries[1].Count, 2)

	_, err = pipeline.NewPipeline().SummarizeTable(ctx, tbl, pipeline.Schema{Category: "Kind", Value: "PetalLength"})
	gt.True(t, errors.Is(err, data.ErrUnknownColumn))
}

func TestSchemaValidate(t *testing.T) {
	header := []string{"PetalLength", "PetalWidth", "Species"}

	schema := pipeline.Schema{Category: "Species", X: "PetalLength", Y: "PetalWidth", Value: "PetalLength"}
	gt.NoError(t, schema.Validate(header))

	gt.NoError(t, pipeline.Schema{Category: "Species"}.Validate(header))

	err := pipeline.Schema{Category: "Species", X: "SepalLength"}.Validate(header)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, data.ErrUnknownColumn))
}
