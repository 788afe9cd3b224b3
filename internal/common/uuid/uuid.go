package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/starwatch/internal/common/uuid UUID

// UUID generates report IDs
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues time-ordered version 7 UUIDs, so report IDs sort by creation
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID, falling back to a random one if the v7 source fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
