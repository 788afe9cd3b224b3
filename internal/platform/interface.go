package platform

import (
	"context"

	"github.com/KirkDiggler/starwatch/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/starwatch/internal/platform Client

// Client reads broadcaster and room metadata from the streaming platform
type Client interface {
	// GetUserInfo returns a broadcaster's name and room, RoomID is zero when they have none
	GetUserInfo(ctx context.Context, uid int64) (*UserInfo, error)

	// GetRoomInfo returns a room's title, cover, start time and audience counts
	GetRoomInfo(ctx context.Context, roomID int64) (*models.RoomInfo, error)

	// GetRoomPlayStatus returns whether a room is currently on air
	GetRoomPlayStatus(ctx context.Context, roomID int64) (models.LiveStatus, error)

	// GetStatusInfoByUIDs looks up the live status of many broadcasters in one call
	GetStatusInfoByUIDs(ctx context.Context, uids []int64) (map[int64]*StatusInfo, error)

	// GetUserCards resolves display names and avatars, in the same order as uids
	GetUserCards(ctx context.Context, uids []int64) (*UserCards, error)

	// GetPosts returns a broadcaster's most recent posts, newest first
	GetPosts(ctx context.Context, uid int64) ([]*models.Post, error)
}
