package create_job

import (
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
	"github.com/urbanseva/booking-service/pkg/types"
)

// validateRequest validates the request payload
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.CategorySlug == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateSlotStart(req.StartTime); err != nil {
		return err
	}

	for _, sub := range req.SubServices {
		if sub.Name == "" {
			return fmt.Errorf("%w: sub-service name is required", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotStart checks that the start time is one the grid offers: a
// whole hour between opening and closing
func validateSlotStart(start types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	minutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	if minutes%60 != 0 {
		return fmt.Errorf("%w: start time must be on the hour, got %s", ErrInvalidInput, start)
	}

	hour := minutes / 60
	if hour < domain.SlotOpeningHour || hour > domain.SlotClosingHour {
		return fmt.Errorf("%w: start time %s is outside working hours", ErrInvalidInput, start)
	}

	return nil
}
