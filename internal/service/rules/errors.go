package rules

import "errors"

var (
	// ErrRulesNotFound is returned when no pricing rules row matches
	ErrRulesNotFound = errors.New("pricing rules not found")

	// ErrInvalidRule is returned when a rule set fails validation
	ErrInvalidRule = errors.New("invalid pricing rule")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
