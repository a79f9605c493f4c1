package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
	jobRepo "github.com/urbanseva/booking-service/internal/infra/storage/job"
	"github.com/urbanseva/booking-service/internal/service/jobs/models"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

// Service service for job lifecycle operations
type Service struct {
	jobRepo JobRepository
	logger  Logger
}

// NewService creates a jobs service
func NewService(jobRepo JobRepository, logger Logger) *Service {
	return &Service{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// GetByID fetches a job by ID. Only the customer who booked it or the
// worker assigned to it may see it.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.JobResponse, error) {
	s.logger.Info("GetByID: fetching job id=%d for user=%d", id, userID)

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			s.logger.Warn("GetByID: job id=%d not found", id)
			return nil, ErrJobNotFound
		}
		s.logger.Error("GetByID: repository error for job id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !userMaySee(job, userID) {
		s.logger.Warn("GetByID: access denied for user=%d to job id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched job id=%d", id)
	return models.FromDomainJob(job), nil
}

// GetUserJobs fetches the job history of a customer, optionally filtered by
// status. Cancelled jobs are included so the history stays complete.
func (s *Service) GetUserJobs(ctx context.Context, req *models.GetUserJobsRequest) (*models.JobListResponse, error) {
	s.logger.Info("GetUserJobs: fetching jobs for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.JobsFilter{
		CustomerID:      ptr.Ptr(req.UserID),
		IncludeInactive: true,
	}

	if req.Status != nil {
		status, err := models.ToDomainJobStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserJobs: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
		filter.IncludeInactive = false
	}

	jobs, err := s.jobRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserJobs: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserJobs - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserJobs: successfully fetched %d jobs for user=%d", len(jobs), req.UserID)
	return models.FromDomainJobList(jobs), nil
}

// Accept lets a worker claim a pending job. Customers cannot accept their
// own jobs, and a job already claimed or past pending cannot be accepted.
func (s *Service) Accept(ctx context.Context, jobID int64, req *models.AcceptJobRequest) error {
	s.logger.Info("Accept: worker=%d claiming job id=%d", req.WorkerID, jobID)

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			s.logger.Warn("Accept: job id=%d not found", jobID)
			return ErrJobNotFound
		}
		s.logger.Error("Accept: repository error for job id=%d: %v", jobID, err)
		return fmt.Errorf("%w: Accept - repository error: %v", ErrInternal, err)
	}

	if job.CustomerID == req.WorkerID {
		s.logger.Warn("Accept: user=%d tried to accept their own job id=%d", req.WorkerID, jobID)
		return ErrAccessDenied
	}

	if !job.CanBeAccepted() {
		s.logger.Warn("Accept: job id=%d cannot be accepted, status=%s", jobID, job.Status)
		return ErrCannotAccept
	}

	if err := s.jobRepo.Assign(ctx, jobID, req.WorkerID); err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			// Lost the race to another worker
			s.logger.Warn("Accept: job id=%d no longer pending", jobID)
			return ErrCannotAccept
		}
		s.logger.Error("Accept: repository error for job id=%d: %v", jobID, err)
		return fmt.Errorf("%w: Accept - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Accept: job id=%d accepted by worker=%d", jobID, req.WorkerID)
	return nil
}

// Cancel cancels a job. The customer gets cancelled_by_customer, the
// assigned worker gets cancelled_by_worker, anyone else is denied.
func (s *Service) Cancel(ctx context.Context, jobID int64, req *models.CancelJobRequest) error {
	s.logger.Info("Cancel: cancelling job id=%d by user=%d", jobID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for job id=%d", jobID)
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			s.logger.Warn("Cancel: job id=%d not found", jobID)
			return ErrJobNotFound
		}
		s.logger.Error("Cancel: repository error for job id=%d: %v", jobID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !job.CanBeCancelled() {
		s.logger.Warn("Cancel: job id=%d cannot be cancelled, status=%s", jobID, job.Status)
		return ErrCannotCancel
	}

	var cancelStatus domain.JobStatus
	switch {
	case job.CustomerID == req.UserID:
		cancelStatus = domain.StatusCancelledByCustomer
	case job.WorkerID != nil && *job.WorkerID == req.UserID:
		cancelStatus = domain.StatusCancelledByWorker
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel job id=%d", req.UserID, jobID)
		return ErrAccessDenied
	}

	if err := s.jobRepo.Cancel(ctx, jobID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			s.logger.Warn("Cancel: job id=%d not found during cancellation", jobID)
			return ErrJobNotFound
		}
		s.logger.Error("Cancel: repository error for job id=%d: %v", jobID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled job id=%d with status=%s", jobID, cancelStatus)
	return nil
}

// userMaySee reports whether the user is a party to the job
func userMaySee(job *domain.Job, userID int64) bool {
	if job.CustomerID == userID {
		return true
	}
	return job.WorkerID != nil && *job.WorkerID == userID
}
