package rules

import (
	"github.com/urbanseva/booking-service/pkg/dbmetrics"
)

// DBExecutor matches *sql.DB, *sql.Tx and the metrics-wrapped variants
type DBExecutor = dbmetrics.DBExecutor
