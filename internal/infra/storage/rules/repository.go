package rules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/urbanseva/booking-service/internal/domain"
	"github.com/urbanseva/booking-service/pkg/dbmetrics"
	"github.com/urbanseva/booking-service/pkg/psqlbuilder"
	"github.com/urbanseva/booking-service/pkg/types"
)

var rulesColumns = []string{
	"id",
	"category_slug",
	"city",
	"weekend_rate",
	"peak_hour_fee",
	"peak_hours",
	"tax_rate",
	"travel_fee",
	"max_concurrent_jobs",
	"horizon_days",
	"created_at",
	"updated_at",
}

// Repository repository for pricing rules
type Repository struct {
	db DBExecutor
}

// NewRepository creates a pricing rules repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create stores a new pricing rules row
func (r *Repository) Create(ctx context.Context, rules *domain.PricingRules) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns(
			"category_slug",
			"city",
			"weekend_rate",
			"peak_hour_fee",
			"peak_hours",
			"tax_rate",
			"travel_fee",
			"max_concurrent_jobs",
			"horizon_days",
		).
		Values(
			rules.CategorySlug,
			rules.City,
			rules.WeekendRate,
			rules.PeakHourFee,
			pq.Array(peakHoursToStrings(rules.PeakHours)),
			rules.TaxRate,
			rules.TravelFee,
			rules.MaxConcurrentJobs,
			rules.HorizonDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return rules, nil
}

// GetByScope fetches the pricing rules row matching an exact
// (category_slug, city) pair, where nil means the NULL wildcard row
func (r *Repository) GetByScope(ctx context.Context, categorySlug *string, city *string) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rulesColumns...).From("pricing_rules")

	if categorySlug == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_slug": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_slug": *categorySlug})
	}

	if city == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *city})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - build select query: %v", ErrBuildQuery, err)
	}

	rules, err := r.scanRules(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - scan rules: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetRulesWithHierarchy resolves the pricing rules for a category in a city.
// Resolution order, most specific first:
// 1. Rules for the category in the city (categorySlug, city)
// 2. Rules for the category in all cities (categorySlug, NULL)
// 3. Rules for all categories in the city (NULL, city)
// 4. Global rules (NULL, NULL)
//
// Returns ErrRulesNotFound when no level matches.
func (r *Repository) GetRulesWithHierarchy(ctx context.Context, categorySlug *string, city *string) (*domain.PricingRules, error) {
	// 1. Category in city
	if categorySlug != nil && city != nil {
		rules, err := r.GetByScope(ctx, categorySlug, city)
		if err == nil {
			return rules, nil
		}
		if err != ErrRulesNotFound {
			return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 1 (category+city): %v", ErrExecQuery, err)
		}
	}

	// 2. Category everywhere
	if categorySlug != nil {
		rules, err := r.GetByScope(ctx, categorySlug, nil)
		if err == nil {
			return rules, nil
		}
		if err != ErrRulesNotFound {
			return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 2 (category only): %v", ErrExecQuery, err)
		}
	}

	// 3. City for all categories
	if city != nil {
		rules, err := r.GetByScope(ctx, nil, city)
		if err == nil {
			return rules, nil
		}
		if err != ErrRulesNotFound {
			return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 3 (city only): %v", ErrExecQuery, err)
		}
	}

	// 4. Global rules
	rules, err := r.GetByScope(ctx, nil, nil)
	if err == nil {
		return rules, nil
	}
	if err != ErrRulesNotFound {
		return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 4 (global): %v", ErrExecQuery, err)
	}

	return nil, ErrRulesNotFound
}

// GetAll fetches every pricing rules row, global row first
func (r *Repository) GetAll(ctx context.Context) ([]*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rulesColumns...).
		From("pricing_rules").
		OrderBy("category_slug ASC NULLS FIRST, city ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.PricingRules, 0)

	for rows.Next() {
		rules, err := r.scanRules(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		result = append(result, rules)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update replaces the tunable fields of a pricing rules row
func (r *Repository) Update(ctx context.Context, id int64, rules *domain.PricingRules) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pricing_rules").
		Set("weekend_rate", rules.WeekendRate).
		Set("peak_hour_fee", rules.PeakHourFee).
		Set("peak_hours", pq.Array(peakHoursToStrings(rules.PeakHours))).
		Set("tax_rate", rules.TaxRate).
		Set("travel_fee", rules.TravelFee).
		Set("max_concurrent_jobs", rules.MaxConcurrentJobs).
		Set("horizon_days", rules.HorizonDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING category_slug, city, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.CategorySlug,
		&rules.City,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rules.ID = id
	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return rules, nil
}

// Delete removes a pricing rules row
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRulesNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRules(scanner rowScanner) (*domain.PricingRules, error) {
	var rules domain.PricingRules
	var peakHours pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scanner.Scan(
		&rules.ID,
		&rules.CategorySlug,
		&rules.City,
		&rules.WeekendRate,
		&rules.PeakHourFee,
		&peakHours,
		&rules.TaxRate,
		&rules.TravelFee,
		&rules.MaxConcurrentJobs,
		&rules.HorizonDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rules.PeakHours = make([]types.TimeString, len(peakHours))
	for i, h := range peakHours {
		rules.PeakHours[i] = types.TimeString(h)
	}
	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return &rules, nil
}

func peakHoursToStrings(hours []types.TimeString) []string {
	result := make([]string, len(hours))
	for i, h := range hours {
		result[i] = h.String()
	}
	return result
}
