package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	catalogClient "github.com/urbanseva/booking-service/internal/integrations/catalogservice"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

// UseCase use case for quoting a booking price
type UseCase struct {
	catalogClient CatalogServiceClient
	geoClient     GeoServiceClient
	rulesRepo     RulesRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case
func NewUseCase(
	catalogClient CatalogServiceClient,
	geoClient GeoServiceClient,
	rulesRepo RulesRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		geoClient:     geoClient,
		rulesRepo:     rulesRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute produces an itemized quote for a category, sub-service selection,
// date and slot. Job creation runs the same computation, so a quote shown to
// the customer always matches the price stored on the job.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: user=%d, category=%s, date=%s, slot=%s",
		req.UserID, req.CategorySlug, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
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
			uc.logger.Warn("CalculatePrice: using fallback catalog for category=%s", req.CategorySlug)
		} else {
			uc.logger.Error("CalculatePrice: failed to get category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
		}
	}

	// 4. Resolve the rules for the category/city pair
	rules, err := uc.rulesRepo.GetRulesWithHierarchy(ctx, ptr.Ptr(req.CategorySlug), req.City)
	if err != nil && !errors.Is(err, rulesRepo.ErrRulesNotFound) {
		uc.logger.Error("CalculatePrice: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	if rules == nil {
		rules = domain.DefaultPricingRules()
		uc.logger.Info("CalculatePrice: no rules for category=%s, using defaults", req.CategorySlug)
	}

	// 5. The date must be one the customer could have been offered
	if err := domain.ValidateSlotDate(req.Date, now, rules.HorizonDays); err != nil {
		uc.logger.Warn("CalculatePrice: date validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDateOutOfWindow, err)
	}

	// 6. City-specific travel fee overrides the rules fee when the city
	// belongs to an active service area
	if req.City != nil {
		if fee := uc.geoClient.GetTravelFeeWithGracefulDegradation(ctx, *req.City); fee > 0 {
			rules = cloneRulesWithTravelFee(rules, fee)
		}
	}

	// 7. Compute the breakdown
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
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
		case errors.Is(err, domain.ErrUnknownSubService):
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownSubService, err)
		case errors.Is(err, domain.ErrInvalidRule):
			uc.logger.Error("CalculatePrice: unusable rules id=%d: %v", rules.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
		default:
			uc.logger.Error("CalculatePrice: failed to compute breakdown: %v", err)
			return nil, fmt.Errorf("%w: failed to compute breakdown: %v", ErrInternal, err)
		}
	}

	modifiers := make([]Modifier, 0, len(breakdown.Modifiers))
	for _, m := range breakdown.Modifiers {
		modifiers = append(modifiers, Modifier{
			Name:   m.Name,
			Amount: m.Amount,
			Kind:   string(m.Kind),
		})
	}

	uc.logger.Info("CalculatePrice: category=%s, total=%.2f", req.CategorySlug, breakdown.Total)

	return &Response{
		CategorySlug:     category.Slug,
		CategoryName:     category.Name,
		BasePrice:        breakdown.BasePrice,
		SubServicesTotal: breakdown.SubServicesTotal,
		Modifiers:        modifiers,
		Subtotal:         breakdown.Subtotal,
		Tax:              breakdown.Tax,
		TravelFee:        breakdown.TravelFee,
		Total:            breakdown.Total,
	}, nil
}

// cloneRulesWithTravelFee copies the rule set with a different travel fee so
// the shared instance from storage is never mutated
func cloneRulesWithTravelFee(rules *domain.PricingRules, fee float64) *domain.PricingRules {
	clone := *rules
	clone.TravelFee = fee
	return &clone
}
