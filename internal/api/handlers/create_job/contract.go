package create_job

import (
	"context"

	createJob "github.com/urbanseva/booking-service/internal/usecase/create_job"
)

type CreateJobUseCase interface {
	Execute(ctx context.Context, req *createJob.Request) (*createJob.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
