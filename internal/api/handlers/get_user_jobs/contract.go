package get_user_jobs

import (
	"context"

	"github.com/urbanseva/booking-service/internal/service/jobs/models"
)

type JobsService interface {
	GetUserJobs(ctx context.Context, req *models.GetUserJobsRequest) (*models.JobListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
