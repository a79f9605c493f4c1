package create_job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	catalogClient "github.com/urbanseva/booking-service/internal/integrations/catalogservice"
	"github.com/urbanseva/booking-service/pkg/ptr"
	"github.com/urbanseva/booking-service/pkg/types"
)

// UseCase use case for booking a job
type UseCase struct {
	jobRepo          JobRepository
	availabilityRepo AvailabilityRepository
	rulesRepo        RulesRepository
	catalogClient    CatalogServiceClient
	geoClient        GeoServiceClient
	txManager        TxManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	jobRepo JobRepository,
	availabilityRepo AvailabilityRepository,
	rulesRepo RulesRepository,
	catalogClient CatalogServiceClient,
	geoClient GeoServiceClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		jobRepo:          jobRepo,
		availabilityRepo: availabilityRepo,
		rulesRepo:        rulesRepo,
		catalogClient:    catalogClient,
		geoClient:        geoClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute books a job. The price stored on the job comes from the same
// computation as the quote endpoint, and the capacity check plus the insert
// run in one SERIALIZABLE transaction so a slot can never be oversubscribed
// by concurrent bookings.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateJob: customer=%d, category=%s, date=%s, slot=%s",
		req.CustomerID, req.CategorySlug, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateJob: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Resolve the category; catalog outages and unknown slugs fall back
	// to the built-in catalog
	category, err := uc.catalogClient.GetCategoryWithGracefulDegradation(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCategoryNotFound) || errors.Is(err, catalogClient.ErrServiceDegraded) {
			category = catalogClient.FallbackCategory(req.CategorySlug)
			uc.logger.Warn("CreateJob: using fallback catalog for category=%s", req.CategorySlug)
		} else {
			uc.logger.Error("CreateJob: failed to get category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
		}
	}

	// 4. Resolve the rules for the category/city pair
	rules, err := uc.rulesRepo.GetRulesWithHierarchy(ctx, ptr.Ptr(req.CategorySlug), ptr.Ptr(req.City))
	if err != nil && !errors.Is(err, rulesRepo.ErrRulesNotFound) {
		uc.logger.Error("CreateJob: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	if rules == nil {
		rules = domain.DefaultPricingRules()
		uc.logger.Info("CreateJob: no rules for category=%s, using defaults", req.CategorySlug)
	}

	// 5. The date must be bookable and the slot must not have started yet
	if err := domain.ValidateSlotDate(req.Date, now, rules.HorizonDays); err != nil {
		uc.logger.Warn("CreateJob: date validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDateOutOfWindow, err)
	}

	if sameDay(req.Date, now) && !req.StartTime.IsAfter(types.NewTimeString(now)) {
		uc.logger.Warn("CreateJob: slot %s on %s has already started",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: slot %s has already started", ErrSlotUnavailable, req.StartTime)
	}

	// 6. The date and slot must not be blocked
	if err := uc.checkBlocklists(ctx, req); err != nil {
		return nil, err
	}

	// 7. City-specific travel fee overrides the rules fee when the city
	// belongs to an active service area
	if fee := uc.geoClient.GetTravelFeeWithGracefulDegradation(ctx, req.City); fee > 0 {
		clone := *rules
		clone.TravelFee = fee
		rules = &clone
	}

	// 8. Compute the price the job will be stored with
	selected := make([]domain.SelectedSubService, 0, len(req.SubServices))
	for _, sub := range req.SubServices {
		selected = append(selected, domain.SelectedSubService{
			Name:     sub.Name,
			Quantity: sub.Quantity,
		})
	}

	breakdown, err := domain.ComputeBreakdown(category, selected, req.Date, req.StartTime, rules)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			uc.logger.Warn("CreateJob: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
		case errors.Is(err, domain.ErrUnknownSubService):
			uc.logger.Warn("CreateJob: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownSubService, err)
		case errors.Is(err, domain.ErrInvalidRule):
			uc.logger.Error("CreateJob: unusable rules id=%d: %v", rules.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
		default:
			uc.logger.Error("CreateJob: failed to compute breakdown: %v", err)
			return nil, fmt.Errorf("%w: failed to compute breakdown: %v", ErrInternal, err)
		}
	}

	duration := jobDuration(category, selected)

	job := &domain.Job{
		CustomerID:      req.CustomerID,
		CategorySlug:    category.Slug,
		CategoryName:    category.Name,
		Address:         req.Address,
		City:            req.City,
		ScheduledDate:   req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: duration,
		Status:          domain.StatusPending,
		EstimatedPrice:  breakdown.Total,
		Notes:           req.Notes,
	}

	// 9. Capacity check and insert under one SERIALIZABLE transaction.
	// The single-date job fetch locks the day's rows FOR UPDATE.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.JobsFilter{
			CategorySlug:    ptr.Ptr(category.Slug),
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		jobs, err := uc.jobRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get jobs: %v", ErrInternal, err)
		}

		occupied := domain.CountOverlappingJobs(req.StartTime, duration, jobs)
		if occupied >= rules.MaxConcurrentJobs {
			return fmt.Errorf("%w: slot %s on %s is fully booked",
				ErrSlotUnavailable, req.StartTime, req.Date.Format(domain.DateFormat))
		}

		if _, err := uc.jobRepo.Create(txCtx, job); err != nil {
			return fmt.Errorf("%w: failed to create job: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			uc.logger.Warn("CreateJob: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateJob: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateJob: created job id=%d, customer=%d, total=%.2f",
		job.ID, req.CustomerID, breakdown.Total)

	return &Response{
		JobID:           job.ID,
		Status:          job.Status,
		CategorySlug:    job.CategorySlug,
		CategoryName:    job.CategoryName,
		ScheduledDate:   job.ScheduledDate,
		StartTime:       job.StartTime,
		DurationMinutes: job.DurationMinutes,
		EstimatedPrice:  job.EstimatedPrice,
		CreatedAt:       job.CreatedAt,
	}, nil
}

// checkBlocklists rejects dates and slots taken out of sale
func (uc *UseCase) checkBlocklists(ctx context.Context, req *Request) error {
	blockedDates, err := uc.availabilityRepo.ListBlockedDates(ctx, ptr.Ptr(req.CategorySlug), req.Date, req.Date)
	if err != nil {
		uc.logger.Error("CreateJob: failed to get blocked dates: %v", err)
		return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}
	if len(blockedDates) > 0 {
		uc.logger.Warn("CreateJob: date %s is blocked for category=%s",
			req.Date.Format(domain.DateFormat), req.CategorySlug)
		return fmt.Errorf("%w: date %s is blocked", ErrSlotUnavailable, req.Date.Format(domain.DateFormat))
	}

	blockedSlots, err := uc.availabilityRepo.ListBlockedSlots(ctx, ptr.Ptr(req.CategorySlug), req.Date)
	if err != nil {
		uc.logger.Error("CreateJob: failed to get blocked slots: %v", err)
		return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}
	for _, slot := range blockedSlots {
		if slot == req.StartTime {
			uc.logger.Warn("CreateJob: slot %s on %s is blocked for category=%s",
				req.StartTime, req.Date.Format(domain.DateFormat), req.CategorySlug)
			return fmt.Errorf("%w: slot %s is blocked", ErrSlotUnavailable, req.StartTime)
		}
	}

	return nil
}

// jobDuration estimates how long the job occupies its slot: the sum of the
// selected sub-service durations, never less than the category minimum
func jobDuration(category *domain.ServiceCategory, selected []domain.SelectedSubService) int {
	var total int
	for _, sel := range selected {
		if sub, ok := category.FindSubService(sel.Name); ok {
			total += sub.DurationMinutes * sel.Quantity
		}
	}

	if total < category.MinDurationMinutes {
		return category.MinDurationMinutes
	}
	return total
}

// sameDay reports whether two instants fall on the same calendar day
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
