package pipeline

import (
	"context"
	"runtime"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"statplot/pkg/dataprep"
	"statplot/pkg/stats"
)

// CategorySummary is the outcome of summarizing one category.
type CategorySummary struct {
	Category string        `json:"category"`
	Count    int           `json:"count"`
	Summary  stats.Summary `json:"summary"`
	Mean     float64       `json:"mean"`
	Outliers []float64     `json:"outliers"`
}

// Failure records a category whose summary could not be computed.
type Failure struct {
	Category string
	Err      error
}

// Result holds summaries and failures, both in group order.
type Result struct {
	Summaries []CategorySummary
	Failures  []Failure
}

// Pipeline summarizes groups of observations, one worker per group.
type Pipeline struct {
	workers int
}

// Option functional config for Pipeline
type Option func(*Pipeline)

// WithWorkers caps the number of groups summarized concurrently. n <= 0
// falls back to GOMAXPROCS.
func WithWorkers(n int) Option { return func(p *Pipeline) { p.workers = n } }

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{workers: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(p)
	}
	if p.workers <= 0 {
		p.workers = runtime.GOMAXPROCS(0)
	}
	return p
}

// Run summarizes every group. A group that fails to summarize is recorded
// as a Failure and does not stop the others; only ctx cancellation aborts.
func (p *Pipeline) Run(ctx context.Context, groups []dataprep.Group) (*Result, error) {
	logger := ctxlog.From(ctx)
	summaries := make([]*CategorySummary, len(groups))
	failures := make([]error, len(groups))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)

	for i, g := range groups {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return goerr.Wrap(err, "summarization canceled", goerr.V("category", g.Category))
			}

			s, err := stats.Summarize(g.Values)
			if err != nil {
				failures[i] = err
				return nil
			}
			summaries[i] = &CategorySummary{
				Category: g.Category,
				Count:    len(g.Values),
				Summary:  s,
				Mean:     stats.Mean(g.Values),
				Outliers: stats.Outliers(g.Values, s),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for i, g := range groups {
		if failures[i] != nil {
			logger.Warn("skipping category that cannot be summarized",
				"category", g.Category,
				"error", failures[i],
			)
			result.Failures = append(result.Failures, Failure{Category: g.Category, Err: failures[i]})
			continue
		}
		logger.Debug("summarized category",
			"category", g.Category,
			"count", summaries[i].Count,
			"summary", summaries[i].Summary,
		)
		result.Summaries = append(result.Summaries, *summaries[i])
	}
	return result, nil
}
