package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const boxProfitKey = "box_profit:history"

// ErrSessionNotFound is returned when ranking a session that was never added
var ErrSessionNotFound = errors.New("session not found in history")

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed history repository
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

func member(startTime, uid int64, uname string) string {
	return fmt.Sprintf("%d-%d-%s", startTime, uid, uname)
}

// Count returns the number of recorded sessions
func (r *redisRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.client.ZCard(ctx, boxProfitKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count box profit history: %w", err)
	}

	return count, nil
}

// Add records a session's box profit. Re-adding a session replaces its profit.
func (r *redisRepository) Add(ctx context.Context, input *AddInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := r.client.ZAdd(ctx, boxProfitKey, redis.Z{
		Score:  input.Profit,
		Member: member(input.StartTime, input.UID, input.UName),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to add box profit history: %w", err)
	}

	return nil
}

// Rank returns the 0-based position of a session, lowest profit first
func (r *redisRepository) Rank(ctx context.Context, input *RankInput) (int64, error) {
	if input == nil {
		return 0, errors.New("input cannot be nil")
	}

	rank, err := r.client.ZRank(ctx, boxProfitKey, member(input.StartTime, input.UID, input.UName)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to rank box profit history: %w", err)
	}

	return rank, nil
}
