package domain

import "github.com/urbanseva/booking-service/pkg/types"

// Default pricing rule values, used when no pricing_rules row matches.
// The weekend rate is never defaulted inside the pricing engine itself —
// it always comes in through the rules record, so the choice of rate stays
// an explicit configuration decision.
const (
	DefaultWeekendRate       = 0.10
	DefaultPeakHourFee       = 50.0
	DefaultTaxRate           = 0.18
	DefaultTravelFee         = 0.0
	DefaultMaxConcurrentJobs = 5
	DefaultHorizonDays       = 14
)

// Business validation constants
const (
	MinHorizonDays = 1
	MaxHorizonDays = 60

	MinConcurrentJobs = 1
	MaxConcurrentJobs = 100

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Slot grid constants. Every category offers the same 10 hourly slots;
// the first and last hour of the day carry the peak surcharge.
const (
	SlotOpeningHour     = 9
	SlotClosingHour     = 18
	SlotCount           = SlotClosingHour - SlotOpeningHour + 1
	SlotDurationMinutes = 60
)

// DefaultPeakHours opening and closing slots that incur the flat peak fee
var DefaultPeakHours = []types.TimeString{"09:00", "18:00"}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses job statuses excluded when counting slot occupancy
var InactiveStatuses = []JobStatus{
	StatusCancelledByCustomer,
	StatusCancelledByWorker,
}

// ActiveStatuses job statuses that occupy a slot
var ActiveStatuses = []JobStatus{
	StatusPending,
	StatusAccepted,
	StatusInProgress,
	StatusCompleted,
}
