package job

import (
	"context"
	"database/sql"

	"github.com/urbanseva/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository works over *sql.DB,
// *sql.Tx and the metrics-wrapped variants alike
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
