package engine

import "time"

// TimeSource supplies the current time to timers and frame pacing
type TimeSource interface {
	Now() time.Time
}

// TimeProvider reads the wall clock with its monotonic reading
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
