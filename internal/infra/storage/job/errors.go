package job

import "errors"

var (
	// ErrJobNotFound is returned when the job does not exist
	ErrJobNotFound = errors.New("job.repository: job not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("job.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("job.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("job.repository: failed to scan row")

	// ErrInvalidStatus is returned on an attempt to set an unsupported status
	ErrInvalidStatus = errors.New("job.repository: invalid job status")
)
