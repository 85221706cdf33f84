package data

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNoHeader       = goerr.New("CSV input has no header row")
	ErrUnknownColumn  = goerr.New("unknown column")
	ErrMissingValue   = goerr.New("missing value")
	ErrMalformedValue = goerr.New("malformed numeric value")
	ErrNonFiniteValue = goerr.New("non-finite numeric value")
)
