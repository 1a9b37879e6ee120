package ports

import "time"

// Clock supplies wall-clock time and duration arithmetic wherever expiry is
// computed, so tests can pin time.
type Clock interface {
	Now() time.Time
	// Add shifts t by a duration written as "<n><unit>", unit in s/m/h/d
	// (e.g. "30s", "15m", "12h", "7d").
	Add(t time.Time, duration string) (time.Time, error)
}
