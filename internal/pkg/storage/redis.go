package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/westbet/westbetpro/internal/pkg/config"
)

// RedisClient backs the engine run lock and the score feed cache.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// releaseScript deletes the lock key only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// AcquireRunLock takes the engine run lock for a date range. Returns
// ErrLockHeld when another run owns it. The returned release function
// only deletes the lock if it is still ours; an expired-and-retaken
// lock is left alone.
func (r *RedisClient) AcquireRunLock(ctx context.Context, dateFrom, dateTo time.Time, ttl time.Duration) (func(context.Context) error, error) {
	key := fmt.Sprintf("engine:run_lock:%s:%s",
		dateFrom.Format("2006-01-02"), dateTo.Format("2006-01-02"))
	holder := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, holder, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	release := func(ctx context.Context) error {
		return releaseScript.Run(ctx, r.client, []string{key}, holder).Err()
	}
	return release, nil
}

// GetJSON loads a cached JSON value. The bool reports a cache hit.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON caches a JSON value with a TTL.
func (r *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}
