package get_available_slots

import "fmt"

// validateRequest validates the request payload
func validateRequest(req *Request) error {
	if req.CategorySlug == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
