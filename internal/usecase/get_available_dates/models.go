package get_available_dates

import "time"

// Request request model for listing bookable dates
type Request struct {
	UserID       int64   // requesting user, logged only
	CategorySlug string  // service category the dates are for
	City         *string // nil when the customer has not picked a city yet
	Days         *int    // optional window override, capped at the rules horizon; nil = rules horizon
}

// Response response model with the bookable window
type Response struct {
	CategorySlug string
	HorizonDays  int
	Dates        []DateCandidate
}

// DateCandidate one offered day in the bookable window
type DateCandidate struct {
	Date        time.Time
	DayName     string // "Mon"
	DayNumber   int    // 1-31
	Month       string // "Jan"
	IsWeekend   bool
	IsAvailable bool
}
