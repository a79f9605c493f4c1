package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString is a time of day in "HH:MM" format, as stored and transferred
// between services. The zero value is the empty string.
type TimeString string

var (
	// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// NewTimeString creates a TimeString from a time.Time, truncating seconds
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time
func (ts TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero reports whether the value is unset
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the raw "HH:MM" value
func (ts TimeString) String() string {
	return string(ts)
}

// Hour returns the hour component (0-23)
func (ts TimeString) Hour() (int, error) {
	t, err := time.Parse("15:04", string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour(), nil
}

// Minutes returns the value as minutes since midnight
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse("15:04", string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of
// minutes. The result wraps around midnight.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse("15:04", string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format("15:04")), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether ts is strictly later in the day than other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, err := ts.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// DisplayLabel formats the time for customer-facing slot grids,
// e.g. "09:00" -> "09:00 AM", "13:00" -> "01:00 PM"
func (ts TimeString) DisplayLabel() string {
	t, err := time.Parse("15:04", string(ts))
	if err != nil {
		return string(ts)
	}
	return t.Format("03:04 PM")
}
