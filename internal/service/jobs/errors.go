package jobs

import "errors"

var (
	// ErrJobNotFound is returned when the job does not exist
	ErrJobNotFound = errors.New("job not found")

	// ErrAccessDenied is returned when the user has no rights to the job
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the job is past cancellation
	ErrCannotCancel = errors.New("job cannot be cancelled")

	// ErrCannotAccept is returned when the job is not open for acceptance
	ErrCannotAccept = errors.New("job cannot be accepted")

	// ErrInvalidStatus is returned on an unsupported status value
	ErrInvalidStatus = errors.New("invalid job status")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
