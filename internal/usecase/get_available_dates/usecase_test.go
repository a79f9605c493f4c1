package get_available_dates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

type fakeAvailability struct {
	blockedDates []time.Time
	err          error
}

func (f *fakeAvailability) ListBlockedDates(_ context.Context, _ *string, _, _ time.Time) ([]time.Time, error) {
	return f.blockedDates, f.err
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

// Monday
var testNow = time.Date(2025, 6, 9, 12, 30, 0, 0, time.UTC)

func newTestUseCase(availability *fakeAvailability, rules *fakeRules) *UseCase {
	uc := NewUseCase(availability, rules, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_WindowStartsTomorrow(t *testing.T) {
	uc := newTestUseCase(&fakeAvailability{}, &fakeRules{err: rulesRepo.ErrRulesNotFound})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHorizonDays, resp.HorizonDays)
	require.Len(t, resp.Dates, domain.DefaultHorizonDays)

	tomorrow := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, resp.Dates[0].Date.Equal(tomorrow))
	assert.Equal(t, "Tue", resp.Dates[0].DayName)
	assert.Equal(t, 10, resp.Dates[0].DayNumber)
	assert.Equal(t, "Jun", resp.Dates[0].Month)
	assert.False(t, resp.Dates[0].IsWeekend)
	assert.True(t, resp.Dates[0].IsAvailable)
}

func TestExecute_HorizonFromRules(t *testing.T) {
	rules := domain.DefaultPricingRules()
	rules.HorizonDays = 7

	uc := newTestUseCase(&fakeAvailability{}, &fakeRules{rules: rules})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.HorizonDays)
	assert.Len(t, resp.Dates, 7)

	// Jun 14 and 15 are the weekend of that window
	var weekendCount int
	for _, d := range resp.Dates {
		if d.IsWeekend {
			weekendCount++
		}
	}
	assert.Equal(t, 2, weekendCount)
}

func TestExecute_DaysOverrideNarrowsWindow(t *testing.T) {
	uc := newTestUseCase(&fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Days:         ptr.Ptr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.HorizonDays)
	assert.Len(t, resp.Dates, 3)
}

func TestExecute_DaysOverrideCappedAtRulesHorizon(t *testing.T) {
	rules := domain.DefaultPricingRules()
	rules.HorizonDays = 14

	uc := newTestUseCase(&fakeAvailability{}, &fakeRules{rules: rules})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Days:         ptr.Ptr(30),
	})

	require.NoError(t, err)
	assert.Equal(t, 14, resp.HorizonDays)
	require.Len(t, resp.Dates, 14)

	// Every offered date must pass the same window check the slot grid applies
	for _, d := range resp.Dates {
		assert.NoError(t, domain.ValidateSlotDate(d.Date, testNow, rules.HorizonDays),
			"date %s offered outside the slot window", d.Date.Format(domain.DateFormat))
	}
}

func TestExecute_BlockedDatesFlaggedUnavailable(t *testing.T) {
	blocked := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAvailability{blockedDates: []time.Time{blocked}},
		&fakeRules{rules: domain.DefaultPricingRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
	})

	require.NoError(t, err)
	for _, d := range resp.Dates {
		if d.Date.Equal(blocked) {
			assert.False(t, d.IsAvailable)
		} else {
			assert.True(t, d.IsAvailable)
		}
	}
}

func TestExecute_InvalidDaysOverride(t *testing.T) {
	uc := newTestUseCase(&fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	for _, days := range []int{0, -1, domain.MaxHorizonDays + 1} {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:       7,
			CategorySlug: "plumbing",
			Days:         ptr.Ptr(days),
		})
		assert.ErrorIs(t, err, ErrInvalidRange, "days=%d", days)
	}
}

func TestExecute_MissingCategory(t *testing.T) {
	uc := newTestUseCase(&fakeAvailability{}, &fakeRules{rules: domain.DefaultPricingRules()})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BlocklistStorageErrorIsInternal(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailability{err: errors.New("connection refused")},
		&fakeRules{rules: domain.DefaultPricingRules()},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
