package report

// ReportError is a custom error type for report building errors
type ReportError string

// Error implements the error interface
func (e ReportError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ReportError = "config cannot be nil"
	ErrNilRoomRepo      ReportError = "room repository cannot be nil"
	ErrNilStatsRepo     ReportError = "stats repository cannot be nil"
	ErrNilHistoryRepo   ReportError = "history repository cannot be nil"
	ErrNilPlatform      ReportError = "platform client cannot be nil"
	ErrNilUUIDGenerator ReportError = "UUID generator cannot be nil"
	ErrNilInput         ReportError = "input cannot be nil"
	ErrNilStreamer      ReportError = "streamer cannot be nil"
)
