package calculate_price

import (
	"context"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
)

// CatalogServiceClient interface over the CatalogService client
type CatalogServiceClient interface {
	GetCategoryWithGracefulDegradation(ctx context.Context, slug string) (*domain.ServiceCategory, error)
}

// GeoServiceClient interface over the GeoService client
type GeoServiceClient interface {
	GetTravelFeeWithGracefulDegradation(ctx context.Context, city string) float64
}

// RulesRepository interface over the pricing rules storage
type RulesRepository interface {
	// GetRulesWithHierarchy resolves the rules for a category/city pair
	GetRulesWithHierarchy(ctx context.Context, categorySlug *string, city *string) (*domain.PricingRules, error)
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
