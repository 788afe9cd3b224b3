package mention

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/redis/go-redis/v9"
)

const mentionKeyPrefix = "mention:"

// Config holds configuration for the Redis mention repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed mention repository
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

func mentionKey(kind models.MentionKind, targetID string) string {
	return fmt.Sprintf("%s%s:%s", mentionKeyPrefix, kind, targetID)
}

func validate(kind models.MentionKind, targetID string) error {
	if kind != models.MentionLiveOn && kind != models.MentionPost {
		return fmt.Errorf("unknown mention kind %q", kind)
	}
	if targetID == "" {
		return errors.New("target ID cannot be empty")
	}
	return nil
}

// Add puts a user on a channel's list
func (r *redisRepository) Add(ctx context.Context, input *ChangeInput) (bool, error) {
	if input == nil || input.UserID == "" {
		return false, errors.New("input and user ID cannot be empty")
	}
	if err := validate(input.Kind, input.TargetID); err != nil {
		return false, err
	}

	added, err := r.client.SAdd(ctx, mentionKey(input.Kind, input.TargetID), input.UserID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add mention: %w", err)
	}

	return added > 0, nil
}

// Remove takes a user off a channel's list
func (r *redisRepository) Remove(ctx context.Context, input *ChangeInput) (bool, error) {
	if input == nil || input.UserID == "" {
		return false, errors.New("input and user ID cannot be empty")
	}
	if err := validate(input.Kind, input.TargetID); err != nil {
		return false, err
	}

	removed, err := r.client.SRem(ctx, mentionKey(input.Kind, input.TargetID), input.UserID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove mention: %w", err)
	}

	return removed > 0, nil
}

// List returns a channel's list sorted by user ID
func (r *redisRepository) List(ctx context.Context, input *ListInput) ([]string, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate(input.Kind, input.TargetID); err != nil {
		return nil, err
	}

	users, err := r.client.SMembers(ctx, mentionKey(input.Kind, input.TargetID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list mentions: %w", err)
	}

	sort.Strings(users)
	return users, nil
}
