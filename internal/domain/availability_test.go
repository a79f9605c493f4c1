package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanseva/booking-service/pkg/types"
)

// 2025-06-09 is a Monday
var monday = time.Date(2025, 6, 9, 12, 30, 0, 0, time.UTC)

func TestBuildDateCandidates_WindowShape(t *testing.T) {
	for _, horizon := range []int{1, 7, 14, 30, 60} {
		candidates, err := BuildDateCandidates(monday, horizon, nil)
		require.NoError(t, err)
		require.Len(t, candidates, horizon)

		// starts at today+1, strictly increasing by one day
		expected := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		for _, c := range candidates {
			assert.True(t, c.Date.Equal(expected), "expected %s, got %s", expected, c.Date)
			expected = expected.AddDate(0, 0, 1)
		}
	}
}

func TestBuildDateCandidates_Deterministic(t *testing.T) {
	first, err := BuildDateCandidates(monday, 14, nil)
	require.NoError(t, err)
	second, err := BuildDateCandidates(monday, 14, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDateCandidates_WeekendFlags(t *testing.T) {
	// covers all 7 weekdays: Tue 10th .. Mon 16th
	candidates, err := BuildDateCandidates(monday, 7, nil)
	require.NoError(t, err)

	for _, c := range candidates {
		wd := c.Date.Weekday()
		expected := wd == time.Saturday || wd == time.Sunday
		assert.Equal(t, expected, c.IsWeekend, "weekend flag for %s", wd)
	}
}

func TestBuildDateCandidates_Blocklist(t *testing.T) {
	blocked := map[string]struct{}{
		"2025-06-12": {},
	}

	candidates, err := BuildDateCandidates(monday, 7, blocked)
	require.NoError(t, err)

	for _, c := range candidates {
		if c.Date.Format(DateFormat) == "2025-06-12" {
			assert.False(t, c.IsAvailable)
		} else {
			assert.True(t, c.IsAvailable)
		}
	}
}

func TestBuildDateCandidates_InvalidRange(t *testing.T) {
	for _, horizon := range []int{0, -1, -30} {
		_, err := BuildDateCandidates(monday, horizon, nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestValidateSlotDate(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{"today is accepted", monday, false},
		{"tomorrow is accepted", monday.AddDate(0, 0, 1), false},
		{"horizon edge is accepted", monday.AddDate(0, 0, 14), false},
		{"yesterday is rejected", monday.AddDate(0, 0, -1), true},
		{"beyond horizon is rejected", monday.AddDate(0, 0, 15), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlotDate(tt.date, monday, 14)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDateOutOfWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildSlotGrid_Shape(t *testing.T) {
	tomorrow := monday.AddDate(0, 0, 1)
	slots := BuildSlotGrid(tomorrow, monday, 5, nil)

	require.Len(t, slots, 10)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), slots[9].StartTime)
	assert.Equal(t, "09:00 AM", slots[0].DisplayTime)
	assert.Equal(t, "06:00 PM", slots[9].DisplayTime)

	for i, slot := range slots {
		expectPeak := i == 0 || i == 9
		assert.Equal(t, expectPeak, slot.IsPeakHour, "peak flag for %s", slot.StartTime)
		assert.True(t, slot.IsAvailable, "slot %s should default to available", slot.StartTime)
		assert.Equal(t, 5, slot.RemainingSlots)
		assert.Equal(t, 5, slot.TotalSlots)
	}
}

func TestBuildSlotGrid_SameDayPastSlots(t *testing.T) {
	// 19:00 on the requested day: every slot, including 18:00, has passed
	evening := time.Date(2025, 6, 9, 19, 0, 0, 0, time.UTC)
	slots := BuildSlotGrid(evening, evening, 5, nil)

	require.Len(t, slots, 10)
	for _, slot := range slots {
		assert.False(t, slot.IsAvailable, "slot %s should be unavailable at 19:00", slot.StartTime)
	}
}

func TestBuildSlotGrid_SameDayPartial(t *testing.T) {
	// 12:30 on the requested day: 09:00..12:00 have passed, 13:00.. have not
	slots := BuildSlotGrid(monday, monday, 5, nil)

	for _, slot := range slots {
		hour, err := slot.StartTime.Hour()
		require.NoError(t, err)
		assert.Equal(t, hour >= 13, slot.IsAvailable, "availability for %s", slot.StartTime)
	}
}

func TestBuildSlotGrid_BlockedSlots(t *testing.T) {
	tomorrow := monday.AddDate(0, 0, 1)
	blocked := map[types.TimeString]struct{}{"11:00": {}}

	slots := BuildSlotGrid(tomorrow, monday, 5, blocked)

	for _, slot := range slots {
		assert.Equal(t, slot.StartTime != "11:00", slot.IsAvailable)
	}
}

func TestCountOverlappingJobs(t *testing.T) {
	active := func(start types.TimeString, duration int) *Job {
		return &Job{StartTime: start, DurationMinutes: duration, Status: StatusAccepted}
	}

	jobs := []*Job{
		active("10:00", 60),                 // overlaps the 10:00 slot
		active("10:30", 60),                 // spills into the 11:00 slot
		active("09:00", 60),                 // ends exactly at 10:00, no overlap
		{StartTime: "10:00", DurationMinutes: 60, Status: StatusCancelledByCustomer},
	}

	assert.Equal(t, 2, CountOverlappingJobs("10:00", 60, jobs))
	assert.Equal(t, 1, CountOverlappingJobs("11:00", 60, jobs))
	assert.Equal(t, 0, CountOverlappingJobs("12:00", 60, jobs))
}
