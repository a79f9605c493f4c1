package get_available_dates

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRange is returned when the requested window size is not usable
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
