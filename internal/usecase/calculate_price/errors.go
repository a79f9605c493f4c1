package calculate_price

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateOutOfWindow is returned when the date was never offered for booking
	ErrDateOutOfWindow = errors.New("date is outside the bookable window")

	// ErrInvalidQuantity is returned when a sub-service quantity is below one
	ErrInvalidQuantity = errors.New("invalid sub-service quantity")

	// ErrUnknownSubService is returned when a sub-service does not belong to the category
	ErrUnknownSubService = errors.New("unknown sub-service")

	// ErrInvalidRule is returned when the resolved pricing rules are unusable
	ErrInvalidRule = errors.New("invalid pricing rules")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
