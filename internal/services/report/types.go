package report

import (
	"github.com/KirkDiggler/starwatch/internal/common/uuid"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/platform"
	historyRepo "github.com/KirkDiggler/starwatch/internal/repositories/history"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
)

// Config holds configuration for the report service
type Config struct {
	// Repository dependencies
	RoomRepo    roomRepo.Repository
	StatsRepo   statsRepo.Repository
	HistoryRepo historyRepo.Repository

	// Platform resolves audience counts and user display names
	Platform platform.Client

	// UUID generates report IDs
	UUID uuid.UUID
}

// BuildInput contains parameters for building a report
type BuildInput struct {
	// Streamer's targets decide which optional parts are built
	Streamer *models.Streamer
}
