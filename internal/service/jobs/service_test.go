package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanseva/booking-service/internal/domain"
	jobRepo "github.com/urbanseva/booking-service/internal/infra/storage/job"
	"github.com/urbanseva/booking-service/internal/service/jobs/models"
	"github.com/urbanseva/booking-service/pkg/ptr"
	"github.com/urbanseva/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeJobRepo struct {
	jobs map[int64]*domain.Job

	getByIDErr error
	assignErr  error
	cancelErr  error

	lastFilter       *domain.JobsFilter
	lastCancelStatus domain.JobStatus
	lastCancelReason string
	lastAssignWorker int64
}

func newFakeJobRepo(jobs ...*domain.Job) *fakeJobRepo {
	m := make(map[int64]*domain.Job, len(jobs))
	for _, j := range jobs {
		m[j.ID] = j
	}
	return &fakeJobRepo{jobs: m}
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	j, ok := f.jobs[id]
	if !ok {
		return nil, jobRepo.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) GetWithFilter(ctx context.Context, filter domain.JobsFilter) ([]*domain.Job, error) {
	f.lastFilter = &filter
	var out []*domain.Job
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) Assign(ctx context.Context, id int64, workerID int64) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.lastAssignWorker = workerID
	return nil
}

func (f *fakeJobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	return nil
}

func (f *fakeJobRepo) Cancel(ctx context.Context, id int64, status domain.JobStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.lastCancelStatus = status
	f.lastCancelReason = reason
	return nil
}

func pendingJob(id, customerID int64) *domain.Job {
	return &domain.Job{
		ID:              id,
		CustomerID:      customerID,
		CategorySlug:    "home-cleaning",
		CategoryName:    "Home Cleaning",
		Address:         "12 Rose St",
		City:            "Pune",
		ScheduledDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		EstimatedPrice:  588.82,
		CreatedAt:       time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByID(t *testing.T) {
	job := pendingJob(1, 100)
	job.WorkerID = ptr.Ptr(int64(200))

	svc := NewService(newFakeJobRepo(job), noopLogger{})

	t.Run("customer may see own job", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2025-06-10", resp.ScheduledDate)
	})

	t.Run("assigned worker may see job", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 200)
		assert.NoError(t, err)
	})

	t.Run("third party is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 300)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, 100)
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestService_GetUserJobs(t *testing.T) {
	repo := newFakeJobRepo(pendingJob(1, 100))
	svc := NewService(repo, noopLogger{})

	t.Run("no filter includes cancelled jobs", func(t *testing.T) {
		resp, err := svc.GetUserJobs(context.Background(), &models.GetUserJobsRequest{UserID: 100})
		require.NoError(t, err)
		assert.Len(t, resp.Jobs, 1)
		require.NotNil(t, repo.lastFilter)
		assert.True(t, repo.lastFilter.IncludeInactive)
		assert.Equal(t, int64(100), *repo.lastFilter.CustomerID)
	})

	t.Run("status filter narrows the listing", func(t *testing.T) {
		_, err := svc.GetUserJobs(context.Background(), &models.GetUserJobsRequest{
			UserID: 100,
			Status: ptr.Ptr("pending"),
		})
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
		assert.False(t, repo.lastFilter.IncludeInactive)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.GetUserJobs(context.Background(), &models.GetUserJobsRequest{
			UserID: 100,
			Status: ptr.Ptr("paused"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Accept(t *testing.T) {
	t.Run("worker claims a pending job", func(t *testing.T) {
		repo := newFakeJobRepo(pendingJob(1, 100))
		svc := NewService(repo, noopLogger{})

		err := svc.Accept(context.Background(), 1, &models.AcceptJobRequest{WorkerID: 200})
		require.NoError(t, err)
		assert.Equal(t, int64(200), repo.lastAssignWorker)
	})

	t.Run("customer cannot accept own job", func(t *testing.T) {
		svc := NewService(newFakeJobRepo(pendingJob(1, 100)), noopLogger{})

		err := svc.Accept(context.Background(), 1, &models.AcceptJobRequest{WorkerID: 100})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already accepted job cannot be claimed", func(t *testing.T) {
		job := pendingJob(1, 100)
		job.Status = domain.StatusAccepted
		job.WorkerID = ptr.Ptr(int64(200))
		svc := NewService(newFakeJobRepo(job), noopLogger{})

		err := svc.Accept(context.Background(), 1, &models.AcceptJobRequest{WorkerID: 300})
		assert.ErrorIs(t, err, ErrCannotAccept)
	})

	t.Run("losing the claim race", func(t *testing.T) {
		repo := newFakeJobRepo(pendingJob(1, 100))
		repo.assignErr = jobRepo.ErrJobNotFound
		svc := NewService(repo, noopLogger{})

		err := svc.Accept(context.Background(), 1, &models.AcceptJobRequest{WorkerID: 200})
		assert.ErrorIs(t, err, ErrCannotAccept)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc := NewService(newFakeJobRepo(), noopLogger{})

		err := svc.Accept(context.Background(), 42, &models.AcceptJobRequest{WorkerID: 200})
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("customer cancellation", func(t *testing.T) {
		repo := newFakeJobRepo(pendingJob(1, 100))
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelJobRequest{
			UserID:             100,
			CancellationReason: "change of plans",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByCustomer, repo.lastCancelStatus)
		assert.Equal(t, "change of plans", repo.lastCancelReason)
	})

	t.Run("assigned worker cancellation", func(t *testing.T) {
		job := pendingJob(1, 100)
		job.Status = domain.StatusAccepted
		job.WorkerID = ptr.Ptr(int64(200))
		repo := newFakeJobRepo(job)
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelJobRequest{UserID: 200})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByWorker, repo.lastCancelStatus)
	})

	t.Run("third party is denied", func(t *testing.T) {
		svc := NewService(newFakeJobRepo(pendingJob(1, 100)), noopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelJobRequest{UserID: 300})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed job cannot be cancelled", func(t *testing.T) {
		job := pendingJob(1, 100)
		job.Status = domain.StatusCompleted
		svc := NewService(newFakeJobRepo(job), noopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelJobRequest{UserID: 100})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc := NewService(newFakeJobRepo(pendingJob(1, 100)), noopLogger{})

		longReason := make([]byte, domain.MaxCancellationReasonLength+1)
		for i := range longReason {
			longReason[i] = 'x'
		}

		err := svc.Cancel(context.Background(), 1, &models.CancelJobRequest{
			UserID:             100,
			CancellationReason: string(longReason),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := newFakeJobRepo(pendingJob(1, 100))
		repo.cancelErr = errors.New("connection reset")
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelJobRequest{UserID: 100})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
