package monitor

import "fmt"

// MonitorError is a custom error type for monitoring errors
type MonitorError string

// Error implements the error interface
func (e MonitorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        MonitorError = "config cannot be nil"
	ErrNilStreamer      MonitorError = "streamer cannot be nil"
	ErrNilFeedFactory   MonitorError = "feed factory cannot be nil"
	ErrNilRoomRepo      MonitorError = "room repository cannot be nil"
	ErrNilStatsRepo     MonitorError = "stats repository cannot be nil"
	ErrNilStatsService  MonitorError = "stats service cannot be nil"
	ErrNilReportService MonitorError = "report service cannot be nil"
	ErrNilPlatform      MonitorError = "platform client cannot be nil"
	ErrNilNotifier      MonitorError = "notifier cannot be nil"
	ErrNilClock         MonitorError = "clock cannot be nil"
	ErrNilInput         MonitorError = "input cannot be nil"
	ErrNotConnected     MonitorError = "room feed is not connected"
	ErrMalformedEvent   MonitorError = "malformed event payload"
)

// ConfigurationError is returned when a configured broadcaster cannot be monitored
type ConfigurationError struct {
	UID  int64
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("broadcaster %s (UID: %d) has no live room", e.Name, e.UID)
}
