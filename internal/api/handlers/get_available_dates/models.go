package get_available_dates

import (
	"strconv"

	"github.com/urbanseva/booking-service/internal/domain"
	getAvailableDates "github.com/urbanseva/booking-service/internal/usecase/get_available_dates"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Category    string          `json:"category"`
	HorizonDays int             `json:"horizonDays"`
	Dates       []AvailableDate `json:"dates"`
}

// AvailableDate one offered day
type AvailableDate struct {
	Date        string `json:"date"` // "2025-10-15"
	DayName     string `json:"dayName"`
	DayNumber   int    `json:"dayNumber"`
	Month       string `json:"month"`
	IsWeekend   bool   `json:"isWeekend"`
	IsAvailable bool   `json:"isAvailable"`
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]AvailableDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = AvailableDate{
			Date:        d.Date.Format(domain.DateFormat),
			DayName:     d.DayName,
			DayNumber:   d.DayNumber,
			Month:       d.Month,
			IsWeekend:   d.IsWeekend,
			IsAvailable: d.IsAvailable,
		}
	}

	return &AvailableDatesResponse{
		Category:    resp.CategorySlug,
		HorizonDays: resp.HorizonDays,
		Dates:       dates,
	}
}

// ToUseCaseRequest builds the use case request from query parameters
func ToUseCaseRequest(userID int64, category, city, daysStr string) (*getAvailableDates.Request, error) {
	req := &getAvailableDates.Request{
		UserID:       userID,
		CategorySlug: category,
	}

	if city != "" {
		req.City = ptr.Ptr(city)
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = ptr.Ptr(days)
	}

	return req, nil
}
