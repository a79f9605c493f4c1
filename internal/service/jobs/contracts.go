package jobs

import (
	"context"

	"github.com/urbanseva/booking-service/internal/domain"
)

// JobRepository interface over the jobs storage
type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	GetWithFilter(ctx context.Context, filter domain.JobsFilter) ([]*domain.Job, error)
	Assign(ctx context.Context, id int64, workerID int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error
	Cancel(ctx context.Context, id int64, status domain.JobStatus, reason string) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
