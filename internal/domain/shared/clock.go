package shared

import "time"

// Clock is an abstraction for wall-clock time, allowing time to be fixed in tests.
// Simulation logic itself is measured in turns, not time; the clock only stamps
// ledger entries and log records.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// FixedClock always returns the same instant
type FixedClock struct {
	At time.Time
}

func (f *FixedClock) Now() time.Time {
	return f.At
}
