package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	"github.com/urbanseva/booking-service/pkg/ptr"
	"github.com/urbanseva/booking-service/pkg/types"
)

// UseCase use case for rendering the day slot grid of a category
type UseCase struct {
	jobRepo          JobRepository
	availabilityRepo AvailabilityRepository
	rulesRepo        RulesRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	jobRepo JobRepository,
	availabilityRepo AvailabilityRepository,
	rulesRepo RulesRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		jobRepo:          jobRepo,
		availabilityRepo: availabilityRepo,
		rulesRepo:        rulesRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute builds the hourly grid for a date: 09:00 through 18:00, peak hours
// flagged, already-started slots greyed out on the current day, and remaining
// capacity overlaid from the active jobs of the category
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, category=%s, date=%s",
		req.UserID, req.CategorySlug, req.Date.Format(domain.DateFormat))

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Resolve the rules for the category/city pair
	rules, err := uc.rulesRepo.GetRulesWithHierarchy(ctx, ptr.Ptr(req.CategorySlug), req.City)
	if err != nil && !errors.Is(err, rulesRepo.ErrRulesNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	if rules == nil {
		rules = domain.DefaultPricingRules()
		uc.logger.Info("GetAvailableSlots: no rules for category=%s, using defaults", req.CategorySlug)
	}

	// 4. The date must be one the customer could have been offered
	if err := domain.ValidateSlotDate(req.Date, now, rules.HorizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDateOutOfWindow, err)
	}

	// 5. Load the blocked slots for the date
	blockedSlots, err := uc.availabilityRepo.ListBlockedSlots(ctx, ptr.Ptr(req.CategorySlug), req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	blocked := make(map[types.TimeString]struct{}, len(blockedSlots))
	for _, slot := range blockedSlots {
		blocked[slot] = struct{}{}
	}

	// 6. Generate the base grid
	grid := domain.BuildSlotGrid(req.Date, now, rules.MaxConcurrentJobs, blocked)

	// 7. Load the active jobs of the category on that date
	filter := domain.JobsFilter{
		CategorySlug:    ptr.Ptr(req.CategorySlug),
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	jobs, err := uc.jobRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get jobs: %v", err)
		return nil, fmt.Errorf("%w: failed to get jobs: %v", ErrInternal, err)
	}

	// 8. Overlay remaining capacity per slot
	slots := make([]Slot, 0, len(grid))
	for _, s := range grid {
		occupied := domain.CountOverlappingJobs(s.StartTime, s.DurationMinutes, jobs)

		remaining := s.TotalSlots - occupied
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, Slot{
			StartTime:       s.StartTime,
			DisplayTime:     s.DisplayTime,
			DurationMinutes: s.DurationMinutes,
			IsPeakHour:      s.IsPeakHour,
			IsAvailable:     s.IsAvailable && remaining > 0,
			AvailableSpots:  remaining,
			TotalSpots:      s.TotalSlots,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for category=%s, date=%s",
		len(slots), req.CategorySlug, req.Date.Format(domain.DateFormat))

	return &Response{
		CategorySlug: req.CategorySlug,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}
