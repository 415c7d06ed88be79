package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/pkg/config"
)

var (
	client *redis.Client
	ctx    = context.Background()
	log    *zap.Logger
)

// Init initializes the Redis client
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "",
		DB:       cfg.Redis.DB,
	})

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		return err
	}

	log = zap.L().With(zap.String("component", "redis"))
	log.Info("Redis connected successfully",
		zap.String("addr", cfg.GetRedisAddr()))

	return nil
}

// Available reports whether the Redis client is usable
func Available() bool {
	return client != nil
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// CountAttempt atomically increments the attempt counter for a key and
// returns the new count. The window expiry is set on first increment.
func CountAttempt(key string, window time.Duration) (int, error) {
	if client == nil {
		return 0, fmt.Errorf("redis client not initialized")
	}

	// Lua script: increment and arm the expiry only on the first attempt
	countScript := redis.NewScript(`
		local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('PEXPIRE', KEYS[1], ARGV[1])
		end
		return count
	`)

	result, err := countScript.Run(ctx, client, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}

	count, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected result type")
	}

	return int(count), nil
}

// ResetAttempts clears the attempt counter for a key
func ResetAttempts(key string) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	return client.Del(ctx, key).Err()
}
