package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Observation is one labeled numeric value.
type Observation struct {
	Category string
	Value    float64
}

// Point is one labeled pair of numeric values.
type Point struct {
	Category string
	X, Y     float64
}

// Rejection describes a row that could not be coerced to numbers.
type Rejection struct {
	Line   int
	Column string
	Raw    string
	Err    error
}

// IsMissing reports whether raw is an empty or NA cell.
func IsMissing(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", "NA", "N/A", "null":
		return true
	}
	return false
}

// ParseValue coerces a CSV cell to a finite float64. It never substitutes a
// default: missing, malformed and non-finite cells are all errors.
func ParseValue(raw string) (float64, error) {
	if IsMissing(raw) {
		return 0, goerr.Wrap(ErrMissingValue, "cannot parse value", goerr.V("raw", raw))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, goerr.Wrap(ErrMalformedValue, "cannot parse value",
			goerr.V("raw", raw),
			goerr.V("cause", err.Error()))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, goerr.Wrap(ErrNonFiniteValue, "cannot parse value", goerr.V("raw", raw))
	}
	return v, nil
}

// Observations extracts (category, value) pairs. Rows whose value does not
// parse are returned as rejections instead of observations.
func (t *Table) Observations(category, value string) ([]Observation, []Rejection, error) {
	ci, err := t.Column(category)
	if err != nil {
		return nil, nil, err
	}
	vi, err := t.Column(value)
	if err != nil {
		return nil, nil, err
	}

	var (
		obs      []Observation
		rejected []Rejection
	)
	for _, rec := range t.Records {
		v, err := ParseValue(rec.Fields[vi])
		if err != nil {
			rejected = append(rejected, Rejection{Line: rec.Line, Column: value, Raw: rec.Fields[vi], Err: err})
			continue
		}
		obs = append(obs, Observation{
			Category: strings.TrimSpace(rec.Fields[ci]),
			Value:    v,
		})
	}
	return obs, rejected, nil
}

// Points extracts (category, x, y) triples. A row is rejected when either
// coordinate fails to parse.
func (t *Table) Points(category, x, y string) ([]Point, []Rejection, error) {
	ci, err := t.Column(category)
	if err != nil {
		return nil, nil, err
	}
	xi, err := t.Column(x)
	if err != nil {
		return nil, nil, err
	}
	yi, err := t.Column(y)
	if err != nil {
		return nil, nil, err
	}

	var (
		pts      []Point
		rejected []Rejection
	)
	for _, rec := range t.Records {
		xv, err := ParseValue(rec.Fields[xi])
		if err != nil {
			rejected = append(rejected, Rejection{Line: rec.Line, Column: x, Raw: rec.Fields[xi], Err: err})
			continue
		}
		yv, err := ParseValue(rec.Fields[yi])
		if err != nil {
			rejected = append(rejected, Rejection{Line: rec.Line, Column: y, Raw: rec.Fields[yi], Err: err})
			continue
		}
		pts = append(pts, Point{
			Category: strings.TrimSpace(rec.Fields[ci]),
			X:        xv,
			Y:        yv,
		})
	}
	return pts, rejected, nil
}
