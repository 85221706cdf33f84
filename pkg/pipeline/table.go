package pipeline

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"statplot/pkg/data"
	"statplot/pkg/dataprep"
)

// SummarizeTable extracts the schema's category and value columns from tbl,
// drops rows that do not parse and summarizes each category.
func (p *Pipeline) SummarizeTable(ctx context.Context, tbl *data.Table, schema Schema) (*Result, error) {
	obs, rejected, err := tbl.Observations(schema.Category, schema.Value)
	if err != nil {
		return nil, err
	}
	LogRejections(ctx, rejected)

	return p.Run(ctx, dataprep.GroupBy(obs))
}

// LogRejections reports every rejected row at warn level.
func LogRejections(ctx context.Context, rejected []data.Rejection) {
	logger := ctxlog.From(ctx)
	for _, r := range rejected {
		logger.Warn("skipping row with unparseable value",
			"line", r.Line,
			"column", r.Column,
			"raw", r.Raw,
			"error", r.Err,
		)
	}
}
