package models

import (
	"errors"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status string
	ErrInvalidStatus = errors.New("invalid job status")
)

// Request models

// CancelJobRequest request to cancel a job
type CancelJobRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// AcceptJobRequest request by a worker to claim a pending job
type AcceptJobRequest struct {
	WorkerID int64 `json:"workerId"`
}

// GetUserJobsRequest request for a customer's job history
type GetUserJobsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response models

// JobResponse job data returned to clients
type JobResponse struct {
	ID              int64  `json:"id"`
	CustomerID      int64  `json:"customerId"`
	WorkerID        *int64 `json:"workerId,omitempty"`
	CategorySlug    string `json:"categorySlug"`
	Address         string `json:"address"`
	City            string `json:"city"`
	ScheduledDate   string `json:"scheduledDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`     // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Denormalized data captured at booking time
	CategoryName   string  `json:"categoryName"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Notes          *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobListResponse list of jobs
type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// Conversion helpers

// FromDomainJob converts a domain job to its DTO
func FromDomainJob(j *domain.Job) *JobResponse {
	if j == nil {
		return nil
	}

	resp := &JobResponse{
		ID:              j.ID,
		CustomerID:      j.CustomerID,
		WorkerID:        j.WorkerID,
		CategorySlug:    j.CategorySlug,
		Address:         j.Address,
		City:            j.City,
		ScheduledDate:   j.ScheduledDate.Format(domain.DateFormat),
		StartTime:       j.StartTime.String(),
		DurationMinutes: j.DurationMinutes,
		Status:          string(j.Status),
		CategoryName:    j.CategoryName,
		EstimatedPrice:  j.EstimatedPrice,
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}

	resp.CancellationReason = j.CancellationReason
	if j.CancelledAt != nil {
		cancelledAt := j.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainJobList converts a list of domain jobs
func FromDomainJobList(jobs []*domain.Job) *JobListResponse {
	list := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		list = append(list, *FromDomainJob(j))
	}
	return &JobListResponse{Jobs: list}
}

// ToDomainJobStatus validates and converts a status string
func ToDomainJobStatus(s string) (domain.JobStatus, error) {
	switch status := domain.JobStatus(s); status {
	case domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByWorker:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
