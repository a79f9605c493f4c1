package get_available_dates

import (
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
)

// validateRequest validates the request payload
func validateRequest(req *Request) error {
	if req.CategorySlug == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if req.Days != nil {
		if *req.Days < domain.MinHorizonDays || *req.Days > domain.MaxHorizonDays {
			return fmt.Errorf("%w: days must be between %d and %d, got %d",
				ErrInvalidRange, domain.MinHorizonDays, domain.MaxHorizonDays, *req.Days)
		}
	}

	return nil
}
