package domain

import (
	"time"

	"github.com/urbanseva/booking-service/pkg/types"
)

// JobStatus represents the lifecycle state of a job
type JobStatus string

const (
	StatusPending             JobStatus = "pending"
	StatusAccepted            JobStatus = "accepted"
	StatusInProgress          JobStatus = "in_progress"
	StatusCompleted           JobStatus = "completed"
	StatusCancelledByCustomer JobStatus = "cancelled_by_customer"
	StatusCancelledByWorker   JobStatus = "cancelled_by_worker"
)

// Job represents a booked home-services job
type Job struct {
	ID           int64
	CustomerID   int64
	WorkerID     *int64 // nil until a worker accepts the job
	CategorySlug string

	Address         string
	City            string
	ScheduledDate   time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          JobStatus

	// Denormalized data for history: the category name and the quoted price
	// as they were at booking time
	CategoryName   string
	EstimatedPrice float64
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the job still occupies its slot
func (j *Job) IsActive() bool {
	return j.Status != StatusCancelledByCustomer &&
		j.Status != StatusCancelledByWorker
}

// CanBeCancelled returns true if the job can still be cancelled
func (j *Job) CanBeCancelled() bool {
	return j.Status == StatusPending || j.Status == StatusAccepted
}

// CanBeAccepted returns true if a worker may claim the job
func (j *Job) CanBeAccepted() bool {
	return j.Status == StatusPending && j.WorkerID == nil
}

// IsCancelled returns true if the job has been cancelled by either side
func (j *Job) IsCancelled() bool {
	return j.Status == StatusCancelledByCustomer || j.Status == StatusCancelledByWorker
}

// JobsFilter filters job listings and slot-occupancy counts
type JobsFilter struct {
	CategorySlug    *string    // nil = all categories
	City            *string    // nil = all cities
	CustomerID      *int64     // nil = all customers
	StartDate       *time.Time // nil = no lower bound
	EndDate         *time.Time // nil = no upper bound
	Status          *JobStatus // nil = all statuses
	IncludeInactive bool       // include cancelled jobs
}
