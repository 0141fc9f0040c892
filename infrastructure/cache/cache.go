package cache

import (
	"context"

	"axlas-recipes/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects to Redis. A nil client is returned on failure so callers
// can keep running without the cache layer.
func NewCache(ctx context.Context, addr string, username string, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not reachable - continuing without response cache")
		return nil, err
	}

	return client, nil
}
