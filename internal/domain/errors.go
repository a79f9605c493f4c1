package domain

import "errors"

var (
	// ErrInvalidRange is returned for a non-positive date horizon
	ErrInvalidRange = errors.New("horizon days must be positive")

	// ErrDateOutOfWindow is returned when slots are requested for a date the
	// planner never offered
	ErrDateOutOfWindow = errors.New("date is outside the bookable window")

	// ErrInvalidQuantity is returned for a sub-service quantity below 1
	ErrInvalidQuantity = errors.New("sub-service quantity must be at least 1")

	// ErrUnknownSubService is returned when a selected sub-service is not part
	// of the category
	ErrUnknownSubService = errors.New("unknown sub-service for category")

	// ErrInvalidRule is returned for a malformed pricing rule set
	ErrInvalidRule = errors.New("invalid pricing rule")
)
