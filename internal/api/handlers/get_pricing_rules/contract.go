package get_pricing_rules

import (
	"context"

	"github.com/urbanseva/booking-service/internal/service/rules/models"
)

type RulesService interface {
	List(ctx context.Context) (*models.RulesListResponse, error)
	Resolve(ctx context.Context, categorySlug *string, city *string) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
