package update_pricing_rules

import (
	"context"

	"github.com/urbanseva/booking-service/internal/service/rules/models"
)

type RulesService interface {
	Create(ctx context.Context, req *models.UpsertRulesRequest) (*models.RulesResponse, error)
	Update(ctx context.Context, id int64, req *models.UpsertRulesRequest) (*models.RulesResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
