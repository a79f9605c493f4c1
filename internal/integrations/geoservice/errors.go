package geoservice

import "errors"

var (
	// ErrAreaNotFound is returned when no service area covers the city
	ErrAreaNotFound = errors.New("service area not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("geoservice client: internal error")

	// ErrInvalidResponse is returned on a malformed response from the service
	ErrInvalidResponse = errors.New("geoservice client: invalid response")

	// ErrServiceDegraded is returned when graceful degradation applies:
	// GeoService is unreachable and callers should charge no travel fee
	// rather than block the booking flow
	ErrServiceDegraded = errors.New("geoservice unavailable: graceful degradation applied")
)
