package job

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/urbanseva/booking-service/internal/domain"
	"github.com/urbanseva/booking-service/pkg/dbmetrics"
	"github.com/urbanseva/booking-service/pkg/psqlbuilder"
)

var jobColumns = []string{
	"id",
	"customer_id",
	"worker_id",
	"category_slug",
	"category_name",
	"address",
	"city",
	"scheduled_date",
	"start_time",
	"duration_minutes",
	"status",
	"estimated_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository repository for jobs
type Repository struct {
	db DBExecutor
}

// NewRepository creates a jobs repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create stores a new job. If the context carries an active transaction,
// the insert runs inside it; job creation always happens inside a
// serializable transaction so the slot-capacity check and the insert see
// the same snapshot.
func (r *Repository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("jobs").
		Columns(
			"customer_id",
			"worker_id",
			"category_slug",
			"category_name",
			"address",
			"city",
			"scheduled_date",
			"start_time",
			"duration_minutes",
			"status",
			"estimated_price",
			"notes",
		).
		Values(
			job.CustomerID,
			job.WorkerID,
			job.CategorySlug,
			job.CategoryName,
			job.Address,
			job.City,
			job.ScheduledDate,
			job.StartTime,
			job.DurationMinutes,
			job.Status,
			job.EstimatedPrice,
			job.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&job.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time

	return job, nil
}

// GetByID fetches a job by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	job, err := r.scanJob(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan job: %v", ErrScanRow, err)
	}

	return job, nil
}

// GetWithFilter fetches jobs with flexible filtering: by customer, category,
// city, date range and status. When called inside a transaction for a single
// date, rows are locked FOR UPDATE so concurrent job creation cannot
// oversubscribe a slot.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.JobsFilter) ([]*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(jobColumns...).From("jobs")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.CategorySlug != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_slug": *filter.CategorySlug})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"scheduled_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("scheduled_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanJobs(rows)
}

// UpdateStatus sets the job status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// Assign attaches a worker to a pending job and moves it to accepted
func (r *Repository) Assign(ctx context.Context, id int64, workerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("worker_id", workerID).
		Set("status", domain.StatusAccepted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Assign - execute update: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// Cancel marks a job cancelled with a reason and timestamp
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.JobStatus, reason string) error {
	if status != domain.StatusCancelledByCustomer && status != domain.StatusCancelledByWorker {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", time.Now().UTC()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanJob(scanner rowScanner) (*domain.Job, error) {
	var job domain.Job
	var createdAt, updatedAt sql.NullTime

	err := scanner.Scan(
		&job.ID,
		&job.CustomerID,
		&job.WorkerID,
		&job.CategorySlug,
		&job.CategoryName,
		&job.Address,
		&job.City,
		&job.ScheduledDate,
		&job.StartTime,
		&job.DurationMinutes,
		&job.Status,
		&job.EstimatedPrice,
		&job.Notes,
		&job.CancellationReason,
		&job.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time

	return &job, nil
}

func (r *Repository) scanJobs(rows *sql.Rows) ([]*domain.Job, error) {
	jobs := make([]*domain.Job, 0)

	for rows.Next() {
		job, err := r.scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanJobs - scan job: %v", ErrScanRow, err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanJobs - rows iteration: %v", ErrExecQuery, err)
	}

	return jobs, nil
}
