package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	"github.com/urbanseva/booking-service/pkg/types"
)

type fakeJobs struct {
	jobs []*domain.Job
	err  error
}

func (f *fakeJobs) GetWithFilter(_ context.Context, _ domain.JobsFilter) ([]*domain.Job, error) {
	return f.jobs, f.err
}

type fakeAvailability struct {
	blockedSlots []types.TimeString
	err          error
}

func (f *fakeAvailability) ListBlockedSlots(_ context.Context, _ *string, _ time.Time) ([]types.TimeString, error) {
	return f.blockedSlots, f.err
}

type fakeRules struct {
	rules *domain.PricingRules
	err   error
}

func (f *fakeRules) GetRulesWithHierarchy(_ context.Context, _ *string, _ *string) (*domain.PricingRules, error) {
	return f.rules, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	// Monday, half past noon
	testNow = time.Date(2025, 6, 9, 12, 30, 0, 0, time.UTC)
	// Tuesday
	testTuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

func activeJob(start types.TimeString, duration int) *domain.Job {
	return &domain.Job{
		CustomerID:      1,
		CategorySlug:    "plumbing",
		ScheduledDate:   testTuesday,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusPending,
	}
}

func newTestUseCase(jobs *fakeJobs, availability *fakeAvailability, rules *fakeRules) *UseCase {
	uc := NewUseCase(jobs, availability, rules, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_GridShape(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeAvailability{}, &fakeRules{err: rulesRepo.ErrRulesNotFound})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.SlotCount)

	first, last := resp.Slots[0], resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, types.TimeString("09:00"), first.StartTime)
	assert.Equal(t, "09:00 AM", first.DisplayTime)
	assert.True(t, first.IsPeakHour)
	assert.Equal(t, types.TimeString("18:00"), last.StartTime)
	assert.Equal(t, "06:00 PM", last.DisplayTime)
	assert.True(t, last.IsPeakHour)

	for _, s := range resp.Slots[1 : len(resp.Slots)-1] {
		assert.False(t, s.IsPeakHour, "slot %s", s.StartTime)
	}
	for _, s := range resp.Slots {
		assert.True(t, s.IsAvailable, "slot %s", s.StartTime)
		assert.Equal(t, domain.DefaultMaxConcurrentJobs, s.TotalSpots)
		assert.Equal(t, domain.DefaultMaxConcurrentJobs, s.AvailableSpots)
	}
}

func TestExecute_SameDayPastSlotsUnavailable(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testNow,
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		minutes, merr := s.StartTime.Minutes()
		require.NoError(t, merr)
		if minutes <= 12*60+30 {
			assert.False(t, s.IsAvailable, "slot %s already started", s.StartTime)
		} else {
			assert.True(t, s.IsAvailable, "slot %s", s.StartTime)
		}
	}
}

func TestExecute_CapacityOverlay(t *testing.T) {
	jobs := []*domain.Job{
		activeJob("10:00", 60),
		activeJob("10:00", 60),
		activeJob("10:00", 120), // also covers 11:00
	}

	uc := newTestUseCase(&fakeJobs{jobs: jobs}, &fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
	})

	require.NoError(t, err)

	bySlot := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		bySlot[s.StartTime] = s
	}

	assert.Equal(t, domain.DefaultMaxConcurrentJobs-3, bySlot["10:00"].AvailableSpots)
	assert.Equal(t, domain.DefaultMaxConcurrentJobs-1, bySlot["11:00"].AvailableSpots)
	assert.Equal(t, domain.DefaultMaxConcurrentJobs, bySlot["12:00"].AvailableSpots)
}

func TestExecute_FullSlotBecomesUnavailable(t *testing.T) {
	rules := domain.DefaultPricingRules()
	rules.MaxConcurrentJobs = 2

	jobs := []*domain.Job{
		activeJob("14:00", 60),
		activeJob("14:00", 60),
	}

	uc := newTestUseCase(&fakeJobs{jobs: jobs}, &fakeAvailability{}, &fakeRules{rules: rules})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		if s.StartTime == "14:00" {
			assert.False(t, s.IsAvailable)
			assert.Equal(t, 0, s.AvailableSpots)
		}
	}
}

func TestExecute_CancelledJobsDoNotOccupy(t *testing.T) {
	cancelled := activeJob("14:00", 60)
	cancelled.Status = domain.StatusCancelledByCustomer

	uc := newTestUseCase(&fakeJobs{jobs: []*domain.Job{cancelled}}, &fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		if s.StartTime == "14:00" {
			assert.Equal(t, domain.DefaultMaxConcurrentJobs, s.AvailableSpots)
		}
	}
}

func TestExecute_BlockedSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeJobs{},
		&fakeAvailability{blockedSlots: []types.TimeString{"13:00"}},
		&fakeRules{rules: domain.DefaultPricingRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		if s.StartTime == "13:00" {
			assert.False(t, s.IsAvailable)
		} else {
			assert.True(t, s.IsAvailable)
		}
	}
}

func TestExecute_DateOutOfWindow(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	tests := []struct {
		name string
		date time.Time
	}{
		{"yesterday", testNow.AddDate(0, 0, -1)},
		{"beyond horizon", testNow.AddDate(0, 0, domain.DefaultHorizonDays+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				UserID:       7,
				CategorySlug: "plumbing",
				Date:         tt.date,
			})
			assert.ErrorIs(t, err, ErrDateOutOfWindow)
		})
	}
}

func TestExecute_MissingFields(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, Date: testTuesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 7, CategorySlug: "plumbing"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
