package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/starwatch/internal/common/clock Clock

// Clock stamps session end times and time series points
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system wall clock
type DefaultClock struct{}

func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the wall time without its monotonic reading, every caller persists it
func (c *DefaultClock) Now() time.Time {
	return time.Now().Round(0)
}
