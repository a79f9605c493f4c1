package models

import (
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	"github.com/urbanseva/booking-service/pkg/types"
)

// Request models

// UpsertRulesRequest payload for creating or updating a rule set
type UpsertRulesRequest struct {
	CategorySlug *string  `json:"categorySlug,omitempty"`
	City         *string  `json:"city,omitempty"`
	WeekendRate  float64  `json:"weekendRate"`
	PeakHourFee  float64  `json:"peakHourFee"`
	PeakHours    []string `json:"peakHours"`
	TaxRate      float64  `json:"taxRate"`
	TravelFee    float64  `json:"travelFee"`

	MaxConcurrentJobs int `json:"maxConcurrentJobs"`
	HorizonDays       int `json:"horizonDays"`
}

// ToDomain converts the request to a domain rule set
func (r *UpsertRulesRequest) ToDomain() *domain.PricingRules {
	peakHours := make([]types.TimeString, 0, len(r.PeakHours))
	for _, h := range r.PeakHours {
		peakHours = append(peakHours, types.TimeString(h))
	}

	return &domain.PricingRules{
		CategorySlug:      r.CategorySlug,
		City:              r.City,
		WeekendRate:       r.WeekendRate,
		PeakHourFee:       r.PeakHourFee,
		PeakHours:         peakHours,
		TaxRate:           r.TaxRate,
		TravelFee:         r.TravelFee,
		MaxConcurrentJobs: r.MaxConcurrentJobs,
		HorizonDays:       r.HorizonDays,
	}
}

// Response models

// RulesResponse one rule set
type RulesResponse struct {
	ID           int64    `json:"id"`
	CategorySlug *string  `json:"categorySlug,omitempty"`
	City         *string  `json:"city,omitempty"`
	WeekendRate  float64  `json:"weekendRate"`
	PeakHourFee  float64  `json:"peakHourFee"`
	PeakHours    []string `json:"peakHours"`
	TaxRate      float64  `json:"taxRate"`
	TravelFee    float64  `json:"travelFee"`

	MaxConcurrentJobs int `json:"maxConcurrentJobs"`
	HorizonDays       int `json:"horizonDays"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RulesListResponse list of rule sets
type RulesListResponse struct {
	Rules []RulesResponse `json:"rules"`
}

// FromDomainRules converts a domain rule set to its DTO
func FromDomainRules(r *domain.PricingRules) *RulesResponse {
	if r == nil {
		return nil
	}

	peakHours := make([]string, 0, len(r.PeakHours))
	for _, h := range r.PeakHours {
		peakHours = append(peakHours, h.String())
	}

	return &RulesResponse{
		ID:                r.ID,
		CategorySlug:      r.CategorySlug,
		City:              r.City,
		WeekendRate:       r.WeekendRate,
		PeakHourFee:       r.PeakHourFee,
		PeakHours:         peakHours,
		TaxRate:           r.TaxRate,
		TravelFee:         r.TravelFee,
		MaxConcurrentJobs: r.MaxConcurrentJobs,
		HorizonDays:       r.HorizonDays,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// FromDomainRulesList converts a list of domain rule sets
func FromDomainRulesList(rules []*domain.PricingRules) *RulesListResponse {
	list := make([]RulesResponse, 0, len(rules))
	for _, r := range rules {
		list = append(list, *FromDomainRules(r))
	}
	return &RulesListResponse{Rules: list}
}
