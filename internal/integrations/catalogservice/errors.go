package catalogservice

import "errors"

var (
	// ErrCategoryNotFound is returned when the category slug is unknown
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse is returned on a malformed response from the service
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceDegraded is returned when graceful degradation applies:
	// CatalogService is unreachable and callers should price against the
	// built-in fallback catalog instead of blocking the booking flow
	ErrServiceDegraded = errors.New("catalogservice unavailable: graceful degradation applied")
)
