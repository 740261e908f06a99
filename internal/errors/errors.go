package errors

import "github.com/pkg/errors"

var (
	ErrInvalidTripData     = errors.New("error invalid trip data")
	ErrMissingColumn       = errors.New("error missing required column")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrEmptyFile           = errors.New("error empty data file")
	ErrUnknownCity         = errors.New("error unknown city")
	ErrUnknownFilter       = errors.New("error unknown filter value")
	ErrInputClosed         = errors.New("error input closed")
	ErrInvalidConfig       = errors.New("error invalid config")
)
