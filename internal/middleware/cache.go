package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// The storefront catalog is read-mostly: responses are cached in Redis and
// invalidated whenever the admin mutates the catalog.

const catalogCachePrefix = "catalog:"

// CatalogCache caches successful storefront GET responses. A nil client
// disables caching entirely.
func CatalogCache(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		cacheKey := catalogCacheKey(c)

		ctx := context.Background()
		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			log.Debug().Str("path", c.Path()).Msg("catalog cache hit")
			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		err = c.Next()

		if c.Response().StatusCode() == fiber.StatusOK {
			body := c.Response().Body()
			if setErr := redisClient.Set(ctx, cacheKey, body, ttl).Err(); setErr != nil {
				log.Warn().Err(setErr).Str("cache_key", cacheKey).Msg("failed to cache catalog response")
			}
			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// InvalidateCatalogCache drops every cached storefront response. Called after
// admin mutations so the next read sees fresh data.
func InvalidateCatalogCache(redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, catalogCachePrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("catalog cache scan failed")
		return
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Msg("catalog cache invalidation failed")
			return
		}
		log.Debug().Int("count", len(keys)).Msg("catalog cache invalidated")
	}
}

func catalogCacheKey(c *fiber.Ctx) string {
	key := fmt.Sprintf("%s:%s", c.Path(), string(c.Request().URI().QueryString()))
	hash := sha256.Sum256([]byte(key))
	return catalogCachePrefix + hex.EncodeToString(hash[:])
}
