package dashboard

import "time"

// Clock supplies "now" for the rolling windows (this month, last 7 days).
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// LocalClock reads wall-clock time in the salon's location.
type LocalClock struct {
	Location *time.Location
}

func (c LocalClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
