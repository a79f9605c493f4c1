package domain

import (
	"fmt"
	"time"

	"github.com/urbanseva/booking-service/pkg/types"
)

// ModifierKind classifies a price modifier
type ModifierKind string

const (
	ModifierWeekend  ModifierKind = "weekend"
	ModifierPeakHour ModifierKind = "peak_hour"
)

// Modifier display names
const (
	ModifierNameWeekend  = "Weekend Surge"
	ModifierNamePeakHour = "Peak Hour"
)

// PriceModifier is a named surcharge applied to a booking
type PriceModifier struct {
	Name   string
	Amount float64
	Kind   ModifierKind
}

// PricingRules is the rule set a breakdown is computed under. Rates are
// always explicit: the engine never substitutes its own weekend rate, so
// the historical 10%-vs-20% screen divergence stays a configuration
// decision instead of a hardcoded constant.
type PricingRules struct {
	ID           int64
	CategorySlug *string // nil = applies to all categories
	City         *string // nil = applies to all cities

	WeekendRate float64 // percentage of the running subtotal, e.g. 0.10
	PeakHourFee float64 // flat fee per booking in a peak slot
	PeakHours   []types.TimeString
	TaxRate     float64 // GST, applied to base + sub-services + modifiers
	TravelFee   float64 // flat location fee, excluded from the tax base

	MaxConcurrentJobs int
	HorizonDays       int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultPricingRules returns the compiled-in rule set used when no
// pricing_rules row matches a category/city pair
func DefaultPricingRules() *PricingRules {
	return &PricingRules{
		WeekendRate:       DefaultWeekendRate,
		PeakHourFee:       DefaultPeakHourFee,
		PeakHours:         DefaultPeakHours,
		TaxRate:           DefaultTaxRate,
		TravelFee:         DefaultTravelFee,
		MaxConcurrentJobs: DefaultMaxConcurrentJobs,
		HorizonDays:       DefaultHorizonDays,
	}
}

// IsGlobal returns true if the rule set applies to every category and city
func (r *PricingRules) IsGlobal() bool {
	return r.CategorySlug == nil && r.City == nil
}

// IsPeakHour reports whether the slot is in the rule set's peak hours
func (r *PricingRules) IsPeakHour(slot types.TimeString) bool {
	for _, h := range r.PeakHours {
		if h == slot {
			return true
		}
	}
	return false
}

// Validate checks the rule set for values the engine refuses to price with
func (r *PricingRules) Validate() error {
	if r.WeekendRate < 0 {
		return fmt.Errorf("%w: weekend rate must not be negative", ErrInvalidRule)
	}
	if r.TaxRate < 0 {
		return fmt.Errorf("%w: tax rate must not be negative", ErrInvalidRule)
	}
	if r.PeakHourFee < 0 {
		return fmt.Errorf("%w: peak hour fee must not be negative", ErrInvalidRule)
	}
	if r.TravelFee < 0 {
		return fmt.Errorf("%w: travel fee must not be negative", ErrInvalidRule)
	}
	return nil
}

// PriceBreakdown is an itemized quote. Every intermediate value is kept so
// the booking screen can render the full breakdown, not just the total.
// Amounts are unrounded; rounding to two decimals happens at the HTTP
// boundary only, so intermediate rounding error never compounds.
type PriceBreakdown struct {
	BasePrice        float64
	SubServicesTotal float64
	Modifiers        []PriceModifier
	TravelFee        float64
	Subtotal         float64 // base + sub-services + modifiers
	Tax              float64
	Total            float64 // subtotal + tax + travel fee
}

// ModifierTotal sums the applied modifiers
func (b *PriceBreakdown) ModifierTotal() float64 {
	var sum float64
	for _, m := range b.Modifiers {
		sum += m.Amount
	}
	return sum
}

// ComputeBreakdown prices a booking. This is the single canonical pricing
// algorithm; both the quote endpoint and job creation go through it.
//
// Order of application:
//  1. base price
//  2. sub-service subtotal (unit price x quantity)
//  3. weekend surge, a percentage of base + sub-services, iff the date
//     falls on Saturday or Sunday
//  4. peak hour fee, flat, iff the slot is in rules.PeakHours
//  5. tax over base + sub-services + modifiers
//  6. total = taxed subtotal + travel fee (travel fee is not taxed)
//
// The function is pure: identical inputs always produce an identical
// breakdown, and a validation failure returns no partial result.
func ComputeBreakdown(
	category *ServiceCategory,
	selected []SelectedSubService,
	date time.Time,
	slot types.TimeString,
	rules *PricingRules,
) (*PriceBreakdown, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	base := category.BasePrice

	var subServicesTotal float64
	for _, sel := range selected {
		sub, ok := category.FindSubService(sel.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q not offered under %q", ErrUnknownSubService, sel.Name, category.Slug)
		}
		if sel.Quantity < 1 {
			return nil, fmt.Errorf("%w: %q has quantity %d", ErrInvalidQuantity, sel.Name, sel.Quantity)
		}
		subServicesTotal += sub.Price * float64(sel.Quantity)
	}

	runningSubtotal := base + subServicesTotal
	var modifiers []PriceModifier

	if IsWeekendDate(date) {
		modifiers = append(modifiers, PriceModifier{
			Name:   ModifierNameWeekend,
			Amount: runningSubtotal * rules.WeekendRate,
			Kind:   ModifierWeekend,
		})
	}

	if rules.IsPeakHour(slot) {
		modifiers = append(modifiers, PriceModifier{
			Name:   ModifierNamePeakHour,
			Amount: rules.PeakHourFee,
			Kind:   ModifierPeakHour,
		})
	}

	subtotal := runningSubtotal
	for _, m := range modifiers {
		subtotal += m.Amount
	}

	tax := subtotal * rules.TaxRate

	return &PriceBreakdown{
		BasePrice:        base,
		SubServicesTotal: subServicesTotal,
		Modifiers:        modifiers,
		TravelFee:        rules.TravelFee,
		Subtotal:         subtotal,
		Tax:              tax,
		Total:            subtotal + tax + rules.TravelFee,
	}, nil
}
