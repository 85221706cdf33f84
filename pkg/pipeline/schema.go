package pipeline

import (
	"github.com/m-mizutani/goerr/v2"

	"statplot/pkg/data"
)

// Schema names the dataset columns the charts read.
type Schema struct {
	Category string
	X        string
	Y        string
	Value    string
}

// Validate checks that every named column is present in header.
func (s Schema) Validate(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	var missing []string
	for _, c := range []string{s.Category, s.X, s.Y, s.Value} {
		if c == "" {
			continue
		}
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return goerr.Wrap(data.ErrUnknownColumn, "dataset does not match schema",
			goerr.V("missing", missing),
			goerr.V("header", header))
	}
	return nil
}
