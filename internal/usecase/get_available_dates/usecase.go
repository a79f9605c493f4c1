package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

// UseCase use case for listing the bookable dates of a category
type UseCase struct {
	availabilityRepo AvailabilityRepository
	rulesRepo        RulesRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	rulesRepo RulesRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		rulesRepo:        rulesRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute builds the bookable window for a category: one candidate per day
// starting tomorrow, with blocked dates flagged unavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: user=%d, category=%s, city=%v, days=%v",
		req.UserID, req.CategorySlug, ptr.Deref(req.City), req.Days)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Resolve the rules for the category/city pair
	rules, err := uc.rulesRepo.GetRulesWithHierarchy(ctx, ptr.Ptr(req.CategorySlug), req.City)
	if err != nil && !errors.Is(err, rulesRepo.ErrRulesNotFound) {
		uc.logger.Error("GetAvailableDates: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	if rules == nil {
		rules = domain.DefaultPricingRules()
		uc.logger.Info("GetAvailableDates: no rules for category=%s, using defaults", req.CategorySlug)
	}

	// 4. Window size: the override can narrow the window but never extend it
	// past the rules horizon, so the slot endpoint accepts every offered date
	horizonDays := rules.HorizonDays
	if req.Days != nil && *req.Days < horizonDays {
		horizonDays = *req.Days
	}

	// 5. Load the blocked dates inside the window
	from := now.AddDate(0, 0, 1)
	to := now.AddDate(0, 0, horizonDays)

	blockedDates, err := uc.availabilityRepo.ListBlockedDates(ctx, ptr.Ptr(req.CategorySlug), from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	blocked := make(map[string]struct{}, len(blockedDates))
	for _, date := range blockedDates {
		blocked[date.Format(domain.DateFormat)] = struct{}{}
	}

	// 6. Generate the candidates
	candidates, err := domain.BuildDateCandidates(now, horizonDays, blocked)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			uc.logger.Warn("GetAvailableDates: invalid window: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		uc.logger.Error("GetAvailableDates: failed to build candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to build candidates: %v", ErrInternal, err)
	}

	dates := make([]DateCandidate, 0, len(candidates))
	for _, c := range candidates {
		dates = append(dates, DateCandidate{
			Date:        c.Date,
			DayName:     c.DayName,
			DayNumber:   c.DayNumber,
			Month:       c.Month,
			IsWeekend:   c.IsWeekend,
			IsAvailable: c.IsAvailable,
		})
	}

	uc.logger.Info("GetAvailableDates: generated %d dates for category=%s, horizon=%d",
		len(dates), req.CategorySlug, horizonDays)

	return &Response{
		CategorySlug: req.CategorySlug,
		HorizonDays:  horizonDays,
		Dates:        dates,
	}, nil
}
