package platform

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/starwatch/internal/models"
)

// Config holds configuration for the Bilibili client
type Config struct {
	// LiveBaseURL serves the live room endpoints
	LiveBaseURL string

	// VCBaseURL serves user cards and post history
	VCBaseURL string

	// SESSDATA is an optional login cookie, some endpoints return more detail with it
	SESSDATA string

	// RequestsPerSecond caps outgoing requests, zero or less disables the limit
	RequestsPerSecond float64

	// Timeout applies to each request when HTTPClient is nil
	Timeout time.Duration

	// HTTPClient overrides the default client
	HTTPClient HTTPDoer
}

// UserInfo is a broadcaster's profile
type UserInfo struct {
	UID    int64
	Name   string
	RoomID int64
}

// StatusInfo is one entry of a batch status lookup
type StatusInfo struct {
	UID       int64
	Name      string
	RoomID    int64
	Status    models.LiveStatus
	StartTime int64
}

// UserCards holds display names and avatars as parallel slices
type UserCards struct {
	Names []string
	Faces []string
}

// APIError is a non-zero code in a platform response envelope
type APIError struct {
	Code    int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("platform error %d: %s", e.Code, e.Message)
}
