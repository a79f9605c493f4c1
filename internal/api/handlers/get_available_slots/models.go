package get_available_slots

import (
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	getAvailableSlots "github.com/urbanseva/booking-service/internal/usecase/get_available_slots"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot one entry of the day grid
type AvailableSlot struct {
	StartTime       string `json:"startTime"`   // "09:00"
	DisplayTime     string `json:"displayTime"` // "09:00 AM"
	DurationMinutes int    `json:"durationMinutes"`
	IsPeakHour      bool   `json:"isPeakHour"`
	IsAvailable     bool   `json:"isAvailable"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DisplayTime:     slot.DisplayTime,
			DurationMinutes: slot.DurationMinutes,
			IsPeakHour:      slot.IsPeakHour,
			IsAvailable:     slot.IsAvailable,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
		}
	}

	return &AvailableSlotsResponse{
		Category: resp.CategorySlug,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}

// ToUseCaseRequest builds the use case request from query parameters
func ToUseCaseRequest(userID int64, category, city, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		UserID:       userID,
		CategorySlug: category,
		Date:         date,
	}

	if city != "" {
		req.City = ptr.Ptr(city)
	}

	return req, nil
}
