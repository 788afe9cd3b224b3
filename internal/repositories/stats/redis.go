package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix  = "room:"
	totalKeyPrefix = "total:"

	usersSuffix      = ":users"
	timeSuffix       = ":time"
	boxProfitsSuffix = ":box_profit:records"
	chatSuffix       = ":danmu:content"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
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

func roomKey(roomID int64) string {
	return fmt.Sprintf("%s%d", roomKeyPrefix, roomID)
}

func counterKey(roomID int64, metric models.Metric) string {
	return fmt.Sprintf("%s:%s", roomKey(roomID), metric)
}

func usersKey(roomID int64, metric models.Metric) string {
	return counterKey(roomID, metric) + usersSuffix
}

func seriesKey(roomID int64, series models.Series) string {
	return fmt.Sprintf("%s:%s%s", roomKey(roomID), series, timeSuffix)
}

// IncrRoom adds to a room counter and returns the new total
func (r *redisRepository) IncrRoom(ctx context.Context, input *IncrRoomInput) (float64, error) {
	if input == nil || input.RoomID == 0 {
		return 0, errors.New("input and room ID cannot be empty")
	}

	total, err := r.client.IncrByFloat(ctx, counterKey(input.RoomID, input.Metric), input.Amount).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s for room %d: %w", input.Metric, input.RoomID, err)
	}

	return total, nil
}

// IncrUser adds to a user's value in a room ranking and returns the new value
func (r *redisRepository) IncrUser(ctx context.Context, input *IncrUserInput) (float64, error) {
	if input == nil || input.RoomID == 0 {
		return 0, errors.New("input and room ID cannot be empty")
	}

	member := strconv.FormatInt(input.UserID, 10)
	value, err := r.client.ZIncrBy(ctx, usersKey(input.RoomID, input.Metric), input.Amount, member).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s for user %d: %w", input.Metric, input.UserID, err)
	}

	return value, nil
}

// GetRoom reads a room counter
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (float64, error) {
	if input == nil || input.RoomID == 0 {
		return 0, errors.New("input and room ID cannot be empty")
	}

	value, err := r.client.Get(ctx, counterKey(input.RoomID, input.Metric)).Float64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get %s for room %d: %w", input.Metric, input.RoomID, err)
	}

	return value, nil
}

// CountUsers returns how many distinct users contributed to a metric
func (r *redisRepository) CountUsers(ctx context.Context, input *CountUsersInput) (int64, error) {
	if input == nil || input.RoomID == 0 {
		return 0, errors.New("input and room ID cannot be empty")
	}

	count, err := r.client.ZCard(ctx, usersKey(input.RoomID, input.Metric)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s users: %w", input.Metric, err)
	}

	return count, nil
}

// RankUsers returns users ordered by value, highest first
func (r *redisRepository) RankUsers(ctx context.Context, input *RankUsersInput) (*RankUsersOutput, error) {
	if input == nil || input.RoomID == 0 {
		return nil, errors.New("input and room ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	members, err := r.client.ZRevRangeWithScores(ctx, usersKey(input.RoomID, input.Metric), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to rank %s users: %w", input.Metric, err)
	}

	entries := make([]*models.RankingEntry, 0, len(members))
	for _, z := range members {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		userID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID %q in ranking: %w", member, err)
		}
		entries = append(entries, &models.RankingEntry{
			UserID: userID,
			Value:  z.Score,
		})
	}

	return &RankUsersOutput{
		Entries: entries,
	}, nil
}

// AddTimePoint adds to the bucket of a time series for a timestamp
func (r *redisRepository) AddTimePoint(ctx context.Context, input *AddTimePointInput) error {
	if input == nil || input.RoomID == 0 {
		return errors.New("input and room ID cannot be empty")
	}

	field := strconv.FormatInt(input.Timestamp, 10)
	if err := r.client.HIncrByFloat(ctx, seriesKey(input.RoomID, input.Series), field, input.Amount).Err(); err != nil {
		return fmt.Errorf("failed to add %s time point: %w", input.Series, err)
	}

	return nil
}

// GetSeries returns a time series ordered by timestamp
func (r *redisRepository) GetSeries(ctx context.Context, input *GetSeriesInput) (*GetSeriesOutput, error) {
	if input == nil || input.RoomID == 0 {
		return nil, errors.New("input and room ID cannot be empty")
	}

	buckets, err := r.client.HGetAll(ctx, seriesKey(input.RoomID, input.Series)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s series: %w", input.Series, err)
	}

	points := make([]*models.SeriesPoint, 0, len(buckets))
	for field, raw := range buckets {
		ts, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q in %s series: %w", field, input.Series, err)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q in %s series: %w", raw, input.Series, err)
		}
		points = append(points, &models.SeriesPoint{Timestamp: ts, Value: value})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})

	return &GetSeriesOutput{
		Points: points,
	}, nil
}

// AppendBoxProfit records the room's running box profit
func (r *redisRepository) AppendBoxProfit(ctx context.Context, input *AppendBoxProfitInput) error {
	if input == nil || input.RoomID == 0 {
		return errors.New("input and room ID cannot be empty")
	}

	key := roomKey(input.RoomID) + boxProfitsSuffix
	if err := r.client.RPush(ctx, key, strconv.FormatFloat(input.Total, 'f', -1, 64)).Err(); err != nil {
		return fmt.Errorf("failed to append box profit: %w", err)
	}

	return nil
}

// GetBoxProfits returns the running box profit values in order
func (r *redisRepository) GetBoxProfits(ctx context.Context, input *GetBoxProfitsInput) ([]float64, error) {
	if input == nil || input.RoomID == 0 {
		return nil, errors.New("input and room ID cannot be empty")
	}

	raw, err := r.client.LRange(ctx, roomKey(input.RoomID)+boxProfitsSuffix, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get box profits: %w", err)
	}

	values := make([]float64, 0, len(raw))
	for _, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid box profit %q: %w", v, err)
		}
		values = append(values, f)
	}

	return values, nil
}

// AppendChat adds a message to the room's word-cloud log
func (r *redisRepository) AppendChat(ctx context.Context, input *AppendChatInput) error {
	if input == nil || input.RoomID == 0 {
		return errors.New("input and room ID cannot be empty")
	}

	if err := r.client.RPush(ctx, roomKey(input.RoomID)+chatSuffix, input.Content).Err(); err != nil {
		return fmt.Errorf("failed to append chat: %w", err)
	}

	return nil
}

// GetChat returns the room's word-cloud log
func (r *redisRepository) GetChat(ctx context.Context, input *GetChatInput) ([]string, error) {
	if input == nil || input.RoomID == 0 {
		return nil, errors.New("input and room ID cannot be empty")
	}

	messages, err := r.client.LRange(ctx, roomKey(input.RoomID)+chatSuffix, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	return messages, nil
}

// ArchiveAndReset adds every session counter and ranking into the room's
// all-time totals, then deletes the session keys
func (r *redisRepository) ArchiveAndReset(ctx context.Context, input *ArchiveAndResetInput) error {
	if input == nil || input.RoomID == 0 {
		return errors.New("input and room ID cannot be empty")
	}

	// Read the session counters
	readPipe := r.client.Pipeline()
	counters := make(map[models.Metric]*redis.StringCmd, len(models.AllMetrics))
	for _, metric := range models.AllMetrics {
		counters[metric] = readPipe.Get(ctx, counterKey(input.RoomID, metric))
	}
	if _, err := readPipe.Exec(ctx); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read session counters: %w", err)
	}

	pipe := r.client.TxPipeline()
	keys := make([]string, 0, len(models.AllMetrics)*2+len(models.AllSeries)+2)

	for _, metric := range models.AllMetrics {
		session := counterKey(input.RoomID, metric)
		sessionUsers := usersKey(input.RoomID, metric)
		total := totalKeyPrefix + session
		totalUsers := totalKeyPrefix + sessionUsers

		value, err := counters[metric].Float64()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to read %s counter: %w", metric, err)
		}
		if value != 0 {
			pipe.IncrByFloat(ctx, total, value)
		}

		pipe.ZUnionStore(ctx, totalUsers, &redis.ZStore{
			Keys: []string{totalUsers, sessionUsers},
		})

		keys = append(keys, session, sessionUsers)
	}

	for _, series := range models.AllSeries {
		keys = append(keys, seriesKey(input.RoomID, series))
	}
	keys = append(keys, roomKey(input.RoomID)+boxProfitsSuffix, roomKey(input.RoomID)+chatSuffix)

	pipe.Del(ctx, keys...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive room %d: %w", input.RoomID, err)
	}

	return nil
}
