package calculate_price

import "fmt"

// validateRequest validates the request payload
func validateRequest(req *Request) error {
	if req.CategorySlug == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	for _, sub := range req.SubServices {
		if sub.Name == "" {
			return fmt.Errorf("%w: sub-service name is required", ErrInvalidInput)
		}
	}

	return nil
}
