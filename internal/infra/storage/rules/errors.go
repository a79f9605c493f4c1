package rules

import "errors"

var (
	// ErrRulesNotFound is returned when no pricing rules row matches
	ErrRulesNotFound = errors.New("rules.repository: pricing rules not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("rules.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("rules.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("rules.repository: failed to scan row")
)
