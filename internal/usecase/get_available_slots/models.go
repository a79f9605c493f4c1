package get_available_slots

import (
	"time"

	"github.com/urbanseva/booking-service/pkg/types"
)

// Request request model for the day slot grid
type Request struct {
	UserID       int64   // requesting user, logged only
	CategorySlug string  // service category the slots are for
	City         *string // nil when the customer has not picked a city yet
	Date         time.Time
}

// Response response model with the day grid
type Response struct {
	CategorySlug string
	Date         time.Time
	Slots        []Slot
}

// Slot one entry of the day grid
type Slot struct {
	StartTime       types.TimeString // e.g. "09:00"
	DisplayTime     string           // e.g. "09:00 AM"
	DurationMinutes int
	IsPeakHour      bool
	IsAvailable     bool
	AvailableSpots  int
	TotalSpots      int
}
