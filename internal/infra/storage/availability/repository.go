package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/urbanseva/booking-service/pkg/dbmetrics"
	"github.com/urbanseva/booking-service/pkg/psqlbuilder"
	"github.com/urbanseva/booking-service/pkg/types"
)

// DBExecutor matches *sql.DB, *sql.Tx and the metrics-wrapped variants
type DBExecutor = dbmetrics.DBExecutor

// Repository read access to operational blocklists: whole days and
// individual slots taken out of sale (holidays, maintenance windows)
type Repository struct {
	db DBExecutor
}

// NewRepository creates an availability blocklist repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBlockedDates returns the dates blocked for a category within
// [from, to]. Rows with a NULL category_slug block the date for every
// category; passing nil returns only those global blocks.
func (r *Repository) ListBlockedDates(ctx context.Context, categorySlug *string, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("blocked_date").
		From("blocked_dates").
		Where(squirrel.GtOrEq{"blocked_date": from}).
		Where(squirrel.LtOrEq{"blocked_date": to})

	if categorySlug == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_slug": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"category_slug": nil},
			squirrel.Eq{"category_slug": *categorySlug},
		})
	}

	query, args, err := selectBuilder.OrderBy("blocked_date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)

	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// ListBlockedSlots returns the slot start times blocked for a category on a
// date. NULL category_slug rows apply to every category.
func (r *Repository) ListBlockedSlots(ctx context.Context, categorySlug *string, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_time").
		From("blocked_slots").
		Where(squirrel.Eq{"blocked_date": date})

	if categorySlug == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_slug": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"category_slug": nil},
			squirrel.Eq{"category_slug": *categorySlug},
		})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)

	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
