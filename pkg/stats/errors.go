package stats

import "github.com/m-mizutani/goerr/v2"

var (
	ErrEmptyInput         = goerr.New("empty input")
	ErrNonFiniteValue     = goerr.New("non-finite value")
	ErrInvalidProbability = goerr.New("invalid probability")
	ErrOverflow           = goerr.New("summary overflows float64")
)
