package accept_job

import (
	"context"

	"github.com/urbanseva/booking-service/internal/service/jobs/models"
)

type JobsService interface {
	Accept(ctx context.Context, jobID int64, req *models.AcceptJobRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
