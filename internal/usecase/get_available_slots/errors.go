package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateOutOfWindow is returned when the date was never offered for booking
	ErrDateOutOfWindow = errors.New("date is outside the bookable window")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
