package domain

import (
	"time"

	"github.com/urbanseva/booking-service/pkg/types"
)

// DateCandidate is one offerable calendar date in the booking window
type DateCandidate struct {
	Date        time.Time
	DayName     string // "Mon"
	DayNumber   int
	Month       string // "Jan"
	IsWeekend   bool
	IsAvailable bool
}

// TimeSlot is one offerable slot in the day grid
type TimeSlot struct {
	StartTime       types.TimeString
	DisplayTime     string // "09:00 AM"
	DurationMinutes int
	IsPeakHour      bool
	IsAvailable     bool
	RemainingSlots  int // remaining concurrent capacity, display hint only
	TotalSlots      int
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.RemainingSlots <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	occupied := s.TotalSlots - s.RemainingSlots
	return float64(occupied) / float64(s.TotalSlots) * 100
}

// IsWeekendDate reports whether the date falls on Saturday or Sunday
func IsWeekendDate(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
