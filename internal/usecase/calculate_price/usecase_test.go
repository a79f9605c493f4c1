package calculate_price

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	catalogClient "github.com/urbanseva/booking-service/internal/integrations/catalogservice"
	"github.com/urbanseva/booking-service/pkg/ptr"
	"github.com/urbanseva/booking-service/pkg/types"
)

type fakeCatalog struct {
	category *domain.ServiceCategory
	err      error
}

func (f *fakeCatalog) GetCategoryWithGracefulDegradation(_ context.Context, _ string) (*domain.ServiceCategory, error) {
	return f.category, f.err
}

type fakeGeo struct {
	fee float64
}

func (f *fakeGeo) GetTravelFeeWithGracefulDegradation(_ context.Context, _ string) float64 {
	return f.fee
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
	// Monday
	testNow = time.Date(2025, 6, 9, 12, 30, 0, 0, time.UTC)
	// Tuesday, inside the default horizon
	testTuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	// Saturday
	testSaturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
)

func plumbingCategory() *domain.ServiceCategory {
	return &domain.ServiceCategory{
		Slug:               "plumbing",
		Name:               "Plumbing",
		BasePrice:          499,
		MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "Tap Repair", Price: 199, DurationMinutes: 30},
			{Name: "Pipe Leakage", Price: 399, DurationMinutes: 60},
		},
	}
}

func standardRules() *domain.PricingRules {
	return &domain.PricingRules{
		ID:                1,
		WeekendRate:       0.10,
		PeakHourFee:       50,
		PeakHours:         []types.TimeString{"09:00", "18:00"},
		TaxRate:           0.18,
		TravelFee:         49,
		MaxConcurrentJobs: 5,
		HorizonDays:       14,
	}
}

func newTestUseCase(catalog *fakeCatalog, geo *fakeGeo, rules *fakeRules) *UseCase {
	uc := NewUseCase(catalog, geo, rules, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_WeekdayOffPeakQuote(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Plumbing", resp.CategoryName)
	assert.InDelta(t, 499.0, resp.BasePrice, 1e-9)
	assert.Empty(t, resp.Modifiers)
	assert.InDelta(t, 89.82, resp.Tax, 1e-9)
	assert.InDelta(t, 637.82, resp.Total, 1e-9)
}

func TestExecute_SaturdayPeakQuote(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testSaturday,
		StartTime:    "09:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Modifiers, 2)
	assert.Equal(t, domain.ModifierNameWeekend, resp.Modifiers[0].Name)
	assert.InDelta(t, 49.90, resp.Modifiers[0].Amount, 1e-9)
	assert.Equal(t, domain.ModifierNamePeakHour, resp.Modifiers[1].Name)
	assert.InDelta(t, 50.0, resp.Modifiers[1].Amount, 1e-9)
	assert.InDelta(t, 598.90, resp.Subtotal, 1e-9)
	assert.InDelta(t, 755.702, resp.Total, 1e-9)
}

func TestExecute_GeoTravelFeeOverridesRules(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{fee: 99},
		&fakeRules{rules: standardRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		City:         ptr.Ptr("Pune"),
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	require.NoError(t, err)
	assert.InDelta(t, 99.0, resp.TravelFee, 1e-9)
	assert.InDelta(t, 499*1.18+99, resp.Total, 1e-9)
}

func TestExecute_NoCityKeepsRulesTravelFee(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{fee: 99},
		&fakeRules{rules: standardRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	require.NoError(t, err)
	assert.InDelta(t, 49.0, resp.TravelFee, 1e-9)
}

func TestExecute_FallbackCatalogOnDegradation(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{err: catalogClient.ErrServiceDegraded},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "plumbing", resp.CategorySlug)
	assert.InDelta(t, 499.0, resp.BasePrice, 1e-9)
}

func TestExecute_DefaultRulesWhenNoneStored(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{err: rulesRepo.ErrRulesNotFound},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	require.NoError(t, err)
	assert.InDelta(t, 499*1.18, resp.Total, 1e-9)
}

func TestExecute_DateOutOfWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testNow.AddDate(0, 0, 30),
		StartTime:    "10:00",
	})

	assert.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestExecute_UnknownSubService(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
		SubServices:  []SelectedSubService{{Name: "Haircut", Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrUnknownSubService)
}

func TestExecute_InvalidQuantity(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
		SubServices:  []SelectedSubService{{Name: "Tap Repair", Quantity: 0}},
	})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestExecute_InvalidRules(t *testing.T) {
	badRules := standardRules()
	badRules.TaxRate = -0.18

	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: badRules},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{rules: standardRules()},
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing category", &Request{Date: testTuesday, StartTime: "10:00"}},
		{"missing date", &Request{CategorySlug: "plumbing", StartTime: "10:00"}},
		{"malformed slot", &Request{CategorySlug: "plumbing", Date: testTuesday, StartTime: "25:99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RulesStorageErrorIsInternal(t *testing.T) {
	uc := newTestUseCase(
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		&fakeRules{err: errors.New("connection refused")},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		CategorySlug: "plumbing",
		Date:         testTuesday,
		StartTime:    "10:00",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
