package create_job

import (
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	"github.com/urbanseva/booking-service/pkg/types"
)

// Request request model for booking a job
type Request struct {
	CustomerID   int64
	CategorySlug string
	Address      string
	City         string
	Date         time.Time
	StartTime    types.TimeString
	SubServices  []SelectedSubService
	Notes        *string
}

// SelectedSubService one selected sub-service with its quantity
type SelectedSubService struct {
	Name     string
	Quantity int
}

// Response response model with the created job and its quote
type Response struct {
	JobID           int64
	Status          domain.JobStatus
	CategorySlug    string
	CategoryName    string
	ScheduledDate   time.Time
	StartTime       types.TimeString
	DurationMinutes int
	EstimatedPrice  float64
	CreatedAt       time.Time
}
