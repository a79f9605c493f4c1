package domain

import (
	"fmt"
	"time"

	"github.com/urbanseva/booking-service/pkg/types"
)

// truncateToDay drops the time-of-day component
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BuildDateCandidates generates the bookable window: one candidate per day
// from today+1 through today+horizonDays. Dates in blockedDates (keyed by
// DateFormat) are flagged unavailable; everything else defaults to
// available. Pure function of its inputs, so repeated calls with the same
// today yield an identical sequence.
func BuildDateCandidates(today time.Time, horizonDays int, blockedDates map[string]struct{}) ([]DateCandidate, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, horizonDays)
	}

	start := truncateToDay(today)
	candidates := make([]DateCandidate, 0, horizonDays)

	for i := 1; i <= horizonDays; i++ {
		date := start.AddDate(0, 0, i)
		_, blocked := blockedDates[date.Format(DateFormat)]

		candidates = append(candidates, DateCandidate{
			Date:        date,
			DayName:     date.Format("Mon"),
			DayNumber:   date.Day(),
			Month:       date.Format("Jan"),
			IsWeekend:   IsWeekendDate(date),
			IsAvailable: !blocked,
		})
	}

	return candidates, nil
}

// ValidateSlotDate checks that a slot request is for a date the planner
// could have offered. Today itself is accepted so a same-day grid can be
// rendered with already-passed slots greyed out; dates before today or
// beyond the horizon were never offered.
func ValidateSlotDate(date, today time.Time, horizonDays int) error {
	day := truncateToDay(date)
	start := truncateToDay(today)
	end := start.AddDate(0, 0, horizonDays)

	if day.Before(start) || day.After(end) {
		return fmt.Errorf("%w: %s not in [%s, %s]",
			ErrDateOutOfWindow,
			day.Format(DateFormat),
			start.Format(DateFormat),
			end.Format(DateFormat),
		)
	}
	return nil
}

// BuildSlotGrid generates the fixed day grid: hourly slots from 09:00
// through 18:00, with the opening and closing hour flagged as peak. When
// the requested date is today, slots whose start time has already passed
// are unavailable. Slots in blockedSlots are unavailable regardless.
// Capacity hints are overlaid by the caller; here every slot starts at
// full capacity.
func BuildSlotGrid(date, now time.Time, maxConcurrent int, blockedSlots map[types.TimeString]struct{}) []TimeSlot {
	sameDay := truncateToDay(date).Equal(truncateToDay(now))
	current := types.NewTimeString(now)

	slots := make([]TimeSlot, 0, SlotCount)
	for hour := SlotOpeningHour; hour <= SlotClosingHour; hour++ {
		start := types.TimeString(fmt.Sprintf("%02d:00", hour))

		available := true
		if sameDay && !start.IsAfter(current) {
			available = false
		}
		if _, blocked := blockedSlots[start]; blocked {
			available = false
		}

		slots = append(slots, TimeSlot{
			StartTime:       start,
			DisplayTime:     start.DisplayLabel(),
			DurationMinutes: SlotDurationMinutes,
			IsPeakHour:      hour == SlotOpeningHour || hour == SlotClosingHour,
			IsAvailable:     available,
			RemainingSlots:  maxConcurrent,
			TotalSlots:      maxConcurrent,
		})
	}

	return slots
}

// CountOverlappingJobs counts active jobs that truly overlap the given
// slot. Bookings that merely touch a slot boundary do not overlap: a job
// ending at 11:00 does not occupy the 11:00 slot.
func CountOverlappingJobs(slotStart types.TimeString, slotDuration int, jobs []*Job) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return 0
	}

	count := 0
	for _, job := range jobs {
		if !job.IsActive() {
			continue
		}

		jobStart := job.StartTime
		jobEnd, err := job.StartTime.AddMinutes(job.DurationMinutes)
		if err != nil {
			continue
		}

		if jobStart.IsBefore(slotEnd) && jobEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}
