package rules

import (
	"context"

	"github.com/urbanseva/booking-service/internal/domain"
)

// RulesRepository interface over the pricing rules storage
type RulesRepository interface {
	Create(ctx context.Context, rules *domain.PricingRules) (*domain.PricingRules, error)
	GetAll(ctx context.Context) ([]*domain.PricingRules, error)
	GetRulesWithHierarchy(ctx context.Context, categorySlug *string, city *string) (*domain.PricingRules, error)
	Update(ctx context.Context, id int64, rules *domain.PricingRules) (*domain.PricingRules, error)
	Delete(ctx context.Context, id int64) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
