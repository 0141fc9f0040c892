package cache

import (
	"encoding/json"
	"time"

	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"

	"context"

	"github.com/redis/go-redis/v9"
)

const recipeCacheTTL = 10 * time.Minute

// RecipeCache fronts CMS reads with Redis. All failures degrade to a miss.
type RecipeCache struct {
	redisClient *redis.Client
}

func NewRecipeCache(redisClient *redis.Client) repository.IRecipeCache {
	return &RecipeCache{
		redisClient: redisClient,
	}
}

func (recipeCache *RecipeCache) Get(ctx context.Context, key string, dest any) bool {
	if recipeCache.redisClient == nil {
		return false
	}
	raw, err := recipeCache.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Redis GET failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Corrupt cache entry, treating as miss")
		return false
	}
	return true
}

func (recipeCache *RecipeCache) Set(ctx context.Context, key string, value any) {
	if recipeCache.redisClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to marshal cache value")
		return
	}
	if err := recipeCache.redisClient.Set(ctx, key, raw, recipeCacheTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis SET failed")
	}
}
