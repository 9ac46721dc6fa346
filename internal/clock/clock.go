package clock

import "time"

// Clock abstracts time.Now so lifecycle timestamps are testable.
type Clock interface {
	Now() time.Time
}

// System implements Clock using the system clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
