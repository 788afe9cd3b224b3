package room

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	liveKeyPrefix = "live:"
	postKeyPrefix = "posts:"

	// Snapshot hash fields
	fieldFollowers = "fans"
	fieldFanMedals = "fans_medal"
	fieldGuards    = "guard"
)

// ErrPostNotFound is returned when no post has been recorded for a broadcaster
var ErrPostNotFound = errors.New("no post recorded")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func liveKey(roomID int64, field string) string {
	return fmt.Sprintf("%s%d:%s", liveKeyPrefix, roomID, field)
}

func snapshotKey(roomID, startTime int64) string {
	return fmt.Sprintf("%s%d:snapshot:%d", liveKeyPrefix, roomID, startTime)
}

// GetStatus returns the last persisted status
func (r *redisRepository) GetStatus(ctx context.Context, input *GetStatusInput) (models.LiveStatus, error) {
	if input == nil || input.RoomID == 0 {
		return models.LiveStatusUnknown, errors.New("input and room ID cannot be empty")
	}

	status, err := r.client.Get(ctx, liveKey(input.RoomID, "status")).Int()
	if err != nil {
		if err == redis.Nil {
			return models.LiveStatusUnknown, nil
		}
		return models.LiveStatusUnknown, fmt.Errorf("failed to get status for room %d: %w", input.RoomID, err)
	}

	return models.LiveStatus(status), nil
}

// SetStatus persists the room status
func (r *redisRepository) SetStatus(ctx context.Context, input *SetStatusInput) error {
	if input == nil || input.RoomID == 0 {
		return errors.New("input and room ID cannot be empty")
	}

	if err := r.client.Set(ctx, liveKey(input.RoomID, "status"), int(input.Status), 0).Err(); err != nil {
		return fmt.Errorf("failed to set status for room %d: %w", input.RoomID, err)
	}

	return nil
}

// GetStartTime returns the session start time
func (r *redisRepository) GetStartTime(ctx context.Context, input *GetTimeInput) (int64, error) {
	return r.getTime(ctx, input, "start_time")
}

// SetStartTime persists the session start time
func (r *redisRepository) SetStartTime(ctx context.Context, input *SetTimeInput) error {
	return r.setTime(ctx, input, "start_time")
}

// GetEndTime returns the last session end time
func (r *redisRepository) GetEndTime(ctx context.Context, input *GetTimeInput) (int64, error) {
	return r.getTime(ctx, input, "end_time")
}

// SetEndTime persists the session end time
func (r *redisRepository) SetEndTime(ctx context.Context, input *SetTimeInput) error {
	return r.setTime(ctx, input, "end_time")
}

func (r *redisRepository) getTime(ctx context.Context, input *GetTimeInput, field string) (int64, error) {
	if input == nil || input.RoomID == 0 {
		return 0, errors.New("input and room ID cannot be empty")
	}

	ts, err := r.client.Get(ctx, liveKey(input.RoomID, field)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get %s for room %d: %w", field, input.RoomID, err)
	}

	return ts, nil
}

func (r *redisRepository) setTime(ctx context.Context, input *SetTimeInput, field string) error {
	if input == nil || input.RoomID == 0 {
		return errors.New("input and room ID cannot be empty")
	}

	if err := r.client.Set(ctx, liveKey(input.RoomID, field), input.Timestamp, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s for room %d: %w", field, input.RoomID, err)
	}

	return nil
}

// SaveSnapshot stores the audience counts captured at a session start
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.RoomID == 0 || input.Snapshot == nil {
		return errors.New("input, room ID and snapshot cannot be empty")
	}

	err := r.client.HSet(ctx, snapshotKey(input.RoomID, input.StartTime),
		fieldFollowers, input.Snapshot.Followers,
		fieldFanMedals, input.Snapshot.FanMedals,
		fieldGuards, input.Snapshot.Guards,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save snapshot for room %d: %w", input.RoomID, err)
	}

	return nil
}

// SnapshotExists reports whether any count was captured for a session start
func (r *redisRepository) SnapshotExists(ctx context.Context, input *GetSnapshotInput) (bool, error) {
	if input == nil || input.RoomID == 0 {
		return false, errors.New("input and room ID cannot be empty")
	}

	n, err := r.client.Exists(ctx, snapshotKey(input.RoomID, input.StartTime)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot for room %d: %w", input.RoomID, err)
	}

	return n > 0, nil
}

// GetSnapshot returns the counts for a session start
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.Snapshot, error) {
	if input == nil || input.RoomID == 0 {
		return nil, errors.New("input and room ID cannot be empty")
	}

	values, err := r.client.HMGet(ctx, snapshotKey(input.RoomID, input.StartTime),
		fieldFollowers, fieldFanMedals, fieldGuards).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot for room %d: %w", input.RoomID, err)
	}

	snapshot := models.MissingSnapshot
	targets := []*int64{&snapshot.Followers, &snapshot.FanMedals, &snapshot.Guards}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot value %q: %w", raw, err)
		}
		*targets[i] = n
	}

	return &snapshot, nil
}

// GetLastPostID returns the newest post seen for a broadcaster
func (r *redisRepository) GetLastPostID(ctx context.Context, input *GetLastPostIDInput) (int64, error) {
	if input == nil || input.UID == 0 {
		return 0, errors.New("input and UID cannot be empty")
	}

	id, err := r.client.Get(ctx, fmt.Sprintf("%s%d:last_id", postKeyPrefix, input.UID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to get last post for %d: %w", input.UID, err)
	}

	return id, nil
}

// SetLastPostID records the newest post seen for a broadcaster
func (r *redisRepository) SetLastPostID(ctx context.Context, input *SetLastPostIDInput) error {
	if input == nil || input.UID == 0 {
		return errors.New("input and UID cannot be empty")
	}

	if err := r.client.Set(ctx, fmt.Sprintf("%s%d:last_id", postKeyPrefix, input.UID), input.PostID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set last post for %d: %w", input.UID, err)
	}

	return nil
}
