package create_job

import (
	"context"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	"github.com/urbanseva/booking-service/pkg/types"
)

// JobRepository interface over the jobs storage
type JobRepository interface {
	// Create stores a new job
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// GetWithFilter fetches jobs matching the filter
	GetWithFilter(ctx context.Context, filter domain.JobsFilter) ([]*domain.Job, error)
}

// AvailabilityRepository read access to the operational blocklists
type AvailabilityRepository interface {
	// ListBlockedDates returns the dates blocked for a category within [from, to]
	ListBlockedDates(ctx context.Context, categorySlug *string, from, to time.Time) ([]time.Time, error)
	// ListBlockedSlots returns the slot start times blocked on a date
	ListBlockedSlots(ctx context.Context, categorySlug *string, date time.Time) ([]types.TimeString, error)
}

// RulesRepository interface over the pricing rules storage
type RulesRepository interface {
	// GetRulesWithHierarchy resolves the rules for a category/city pair
	GetRulesWithHierarchy(ctx context.Context, categorySlug *string, city *string) (*domain.PricingRules, error)
}

// CatalogServiceClient interface over the CatalogService client
type CatalogServiceClient interface {
	GetCategoryWithGracefulDegradation(ctx context.Context, slug string) (*domain.ServiceCategory, error)
}

// GeoServiceClient interface over the GeoService client
type GeoServiceClient interface {
	GetTravelFeeWithGracefulDegradation(ctx context.Context, city string) float64
}

// TxManager runs a function inside a database transaction
type TxManager interface {
	// DoSerializable runs fn inside a SERIALIZABLE transaction
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interface for obtaining the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider real time provider for production
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
