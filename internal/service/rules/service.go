package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbanseva/booking-service/internal/domain"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	"github.com/urbanseva/booking-service/internal/service/rules/models"
)

// Service service for managing pricing rules
type Service struct {
	rulesRepo RulesRepository
	logger    Logger
}

// NewService creates a pricing rules service
func NewService(rulesRepo RulesRepository, logger Logger) *Service {
	return &Service{
		rulesRepo: rulesRepo,
		logger:    logger,
	}
}

// List fetches every stored rule set, global first
func (s *Service) List(ctx context.Context) (*models.RulesListResponse, error) {
	s.logger.Info("List: fetching all pricing rules")

	rules, err := s.rulesRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rule sets", len(rules))
	return models.FromDomainRulesList(rules), nil
}

// Resolve returns the rule set that would apply to a category/city pair,
// falling back to the compiled-in defaults when nothing is stored
func (s *Service) Resolve(ctx context.Context, categorySlug *string, city *string) (*models.RulesResponse, error) {
	s.logger.Info("Resolve: category=%v, city=%v", deref(categorySlug), deref(city))

	rules, err := s.rulesRepo.GetRulesWithHierarchy(ctx, categorySlug, city)
	if err != nil {
		if errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Info("Resolve: no stored rules, returning defaults")
			return models.FromDomainRules(domain.DefaultPricingRules()), nil
		}
		s.logger.Error("Resolve: repository error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRules(rules), nil
}

// Create stores a new rule set
func (s *Service) Create(ctx context.Context, req *models.UpsertRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Create: category=%v, city=%v", deref(req.CategorySlug), deref(req.City))

	rules := req.ToDomain()
	if err := validateRules(rules); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.rulesRepo.Create(ctx, rules)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created rule set id=%d", created.ID)
	return models.FromDomainRules(created), nil
}

// Update replaces the tunable fields of a rule set
func (s *Service) Update(ctx context.Context, id int64, req *models.UpsertRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Update: rule set id=%d", id)

	rules := req.ToDomain()
	if err := validateRules(rules); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.rulesRepo.Update(ctx, id, rules)
	if err != nil {
		if errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Warn("Update: rule set id=%d not found", id)
			return nil, ErrRulesNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated rule set id=%d", id)
	return models.FromDomainRules(updated), nil
}

// Delete removes a rule set
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: rule set id=%d", id)

	if err := s.rulesRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Warn("Delete: rule set id=%d not found", id)
			return ErrRulesNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted rule set id=%d", id)
	return nil
}

// validateRules rejects rule sets the pricing engine refuses to work with
func validateRules(rules *domain.PricingRules) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	for _, h := range rules.PeakHours {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("%w: peak hour: %v", ErrInvalidRule, err)
		}
	}

	if rules.MaxConcurrentJobs < domain.MinConcurrentJobs || rules.MaxConcurrentJobs > domain.MaxConcurrentJobs {
		return fmt.Errorf("%w: maxConcurrentJobs must be between %d and %d",
			ErrInvalidRule, domain.MinConcurrentJobs, domain.MaxConcurrentJobs)
	}

	if rules.HorizonDays < domain.MinHorizonDays || rules.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must be between %d and %d",
			ErrInvalidRule, domain.MinHorizonDays, domain.MaxHorizonDays)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
