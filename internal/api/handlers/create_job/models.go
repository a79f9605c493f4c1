package create_job

import (
	"math"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	createJob "github.com/urbanseva/booking-service/internal/usecase/create_job"
	"github.com/urbanseva/booking-service/pkg/types"
)

// CreateJobRequest HTTP request model
type CreateJobRequest struct {
	Category    string               `json:"category"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	Date        string               `json:"date"`      // "2025-10-15"
	StartTime   string               `json:"startTime"` // "09:00"
	SubServices []SelectedSubService `json:"subServices,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
}

// SelectedSubService one selected sub-service with its quantity
type SelectedSubService struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateJobResponse HTTP response model
type CreateJobResponse struct {
	ID              int64   `json:"id"`
	Status          string  `json:"status"`
	Category        string  `json:"category"`
	CategoryName    string  `json:"categoryName"`
	ScheduledDate   string  `json:"scheduledDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	EstimatedPrice  float64 `json:"estimatedPrice"`
	CreatedAt       string  `json:"createdAt"` // ISO 8601
}

// ToUseCaseRequest converts the HTTP request to the use case request
func (r *CreateJobRequest) ToUseCaseRequest(customerID int64) (*createJob.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	subServices := make([]createJob.SelectedSubService, 0, len(r.SubServices))
	for _, sub := range r.SubServices {
		subServices = append(subServices, createJob.SelectedSubService{
			Name:     sub.Name,
			Quantity: sub.Quantity,
		})
	}

	return &createJob.Request{
		CustomerID:   customerID,
		CategorySlug: r.Category,
		Address:      r.Address,
		City:         r.City,
		Date:         date,
		StartTime:    types.TimeString(r.StartTime),
		SubServices:  subServices,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *createJob.Response) *CreateJobResponse {
	return &CreateJobResponse{
		ID:              resp.JobID,
		Status:          string(resp.Status),
		Category:        resp.CategorySlug,
		CategoryName:    resp.CategoryName,
		ScheduledDate:   resp.ScheduledDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		EstimatedPrice:  math.Round(resp.EstimatedPrice*100) / 100,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
