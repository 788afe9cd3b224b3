package report

import (
	"context"

	"github.com/KirkDiggler/starwatch/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/starwatch/internal/services/report Service

// Service assembles the end-of-session report for a room
type Service interface {
	// Build reads the finished session's counters and produces its report.
	// It records the session's box profit in the all-time history as a side effect.
	Build(ctx context.Context, input *BuildInput) (*models.Report, error)
}
