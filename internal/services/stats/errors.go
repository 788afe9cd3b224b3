package stats

// StatsError is a custom error type for aggregation errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    StatsError = "config cannot be nil"
	ErrNilStatsRepo StatsError = "stats repository cannot be nil"
	ErrNilClock     StatsError = "clock cannot be nil"
	ErrNilInput     StatsError = "input cannot be nil"
	ErrUnknownGuard StatsError = "unknown guard tier"
)
