package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jcanovas/vivenda/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the Redis client backing the draft store and
// verifies the connection with a ping. A failed ping is returned as an
// error rather than fatal: the caller may choose to run with the in-memory
// fallback instead.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}
