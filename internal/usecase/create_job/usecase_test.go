package create_job

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
	existing []*domain.Job
	created  *domain.Job
	nextID   int64
}

func (f *fakeJobs) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	f.nextID++
	job.ID = f.nextID
	job.CreatedAt = testNow
	job.UpdatedAt = testNow
	f.created = job
	return job, nil
}

func (f *fakeJobs) GetWithFilter(_ context.Context, _ domain.JobsFilter) ([]*domain.Job, error) {
	return f.existing, nil
}

type fakeAvailability struct {
	blockedDates []time.Time
	blockedSlots []types.TimeString
}

func (f *fakeAvailability) ListBlockedDates(_ context.Context, _ *string, _, _ time.Time) ([]time.Time, error) {
	return f.blockedDates, nil
}

func (f *fakeAvailability) ListBlockedSlots(_ context.Context, _ *string, _ time.Time) ([]types.TimeString, error) {
	return f.blockedSlots, nil
}

type fakeRules struct {
	rules *domain.PricingRules
	err   error
}

func (f *fakeRules) GetRulesWithHierarchy(_ context.Context, _ *string, _ *string) (*domain.PricingRules, error) {
	return f.rules, f.err
}

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

// passthroughTxManager runs the function without a real transaction
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func validRequest() *Request {
	return &Request{
		CustomerID:   7,
		CategorySlug: "plumbing",
		Address:      "12 MG Road",
		City:         "Pune",
		Date:         testTuesday,
		StartTime:    "10:00",
	}
}

func newTestUseCase(jobs *fakeJobs, rules *fakeRules, geo *fakeGeo) *UseCase {
	uc := NewUseCase(
		jobs,
		&fakeAvailability{},
		rules,
		&fakeCatalog{category: plumbingCategory()},
		geo,
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_CreatesPendingJobWithQuotedPrice(t *testing.T) {
	jobs := &fakeJobs{}
	uc := newTestUseCase(jobs, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.JobID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "Plumbing", resp.CategoryName)
	assert.Equal(t, 60, resp.DurationMinutes)
	// default rules: no weekend, off-peak slot, 18% tax, no travel fee
	assert.InDelta(t, 499*1.18, resp.EstimatedPrice, 1e-9)

	require.NotNil(t, jobs.created)
	assert.Equal(t, "Plumbing", jobs.created.CategoryName)
	assert.InDelta(t, resp.EstimatedPrice, jobs.created.EstimatedPrice, 1e-9)
}

func TestExecute_DurationFromSubServices(t *testing.T) {
	jobs := &fakeJobs{}
	uc := newTestUseCase(jobs, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	req := validRequest()
	req.SubServices = []SelectedSubService{
		{Name: "Tap Repair", Quantity: 1},
		{Name: "Pipe Leakage", Quantity: 1},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_DurationFlooredAtCategoryMinimum(t *testing.T) {
	jobs := &fakeJobs{}
	uc := newTestUseCase(jobs, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	req := validRequest()
	req.SubServices = []SelectedSubService{{Name: "Tap Repair", Quantity: 1}}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_GeoTravelFeeIncludedInPrice(t *testing.T) {
	jobs := &fakeJobs{}
	uc := newTestUseCase(jobs, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{fee: 49})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.InDelta(t, 499*1.18+49, resp.EstimatedPrice, 1e-9)
}

func TestExecute_SlotFullyBooked(t *testing.T) {
	rules := domain.DefaultPricingRules()
	rules.MaxConcurrentJobs = 1

	existing := &domain.Job{
		CustomerID:      2,
		CategorySlug:    "plumbing",
		ScheduledDate:   testTuesday,
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
	}

	jobs := &fakeJobs{existing: []*domain.Job{existing}}
	uc := newTestUseCase(jobs, &fakeRules{rules: rules}, &fakeGeo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, jobs.created)
}

func TestExecute_CancelledJobsFreeCapacity(t *testing.T) {
	rules := domain.DefaultPricingRules()
	rules.MaxConcurrentJobs = 1

	cancelled := &domain.Job{
		CustomerID:      2,
		CategorySlug:    "plumbing",
		ScheduledDate:   testTuesday,
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusCancelledByCustomer,
	}

	jobs := &fakeJobs{existing: []*domain.Job{cancelled}}
	uc := newTestUseCase(jobs, &fakeRules{rules: rules}, &fakeGeo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_BlockedDateRejected(t *testing.T) {
	uc := NewUseCase(
		&fakeJobs{},
		&fakeAvailability{blockedDates: []time.Time{testTuesday}},
		&fakeRules{err: rulesRepo.ErrRulesNotFound},
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_BlockedSlotRejected(t *testing.T) {
	uc := NewUseCase(
		&fakeJobs{},
		&fakeAvailability{blockedSlots: []types.TimeString{"10:00"}},
		&fakeRules{err: rulesRepo.ErrRulesNotFound},
		&fakeCatalog{category: plumbingCategory()},
		&fakeGeo{},
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_SameDayPastSlotRejected(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	req := validRequest()
	req.Date = testNow
	req.StartTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_DateOutOfWindow(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, domain.DefaultHorizonDays+1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestExecute_UnknownSubService(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	req := validRequest()
	req.SubServices = []SelectedSubService{{Name: "Haircut", Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownSubService)
}

func TestExecute_InvalidQuantity(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	req := validRequest()
	req.SubServices = []SelectedSubService{{Name: "Tap Repair", Quantity: -2}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&fakeJobs{}, &fakeRules{err: rulesRepo.ErrRulesNotFound}, &fakeGeo{})

	mutations := map[string]func(*Request){
		"no customer":      func(r *Request) { r.CustomerID = 0 },
		"no category":      func(r *Request) { r.CategorySlug = "" },
		"no address":       func(r *Request) { r.Address = "" },
		"no city":          func(r *Request) { r.City = "" },
		"no date":          func(r *Request) { r.Date = time.Time{} },
		"off-hour slot":    func(r *Request) { r.StartTime = "10:30" },
		"slot before open": func(r *Request) { r.StartTime = "08:00" },
		"slot after close": func(r *Request) { r.StartTime = "19:00" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
