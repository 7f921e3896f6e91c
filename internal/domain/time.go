package domain

import "time"

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
