package cache

import (
	"context"
	"errors"
	"time"

	"github.com/lshigami/Pangolin/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// PublishedQuizzesKey caches the published-quiz listing projection.
const PublishedQuizzesKey = "quizzes:published"

// Cache is a thin JSON-string cache over Redis. When no Redis address is
// configured every operation is a no-op, so callers never branch on it.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(cfg *config.Config) *Cache {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, listing cache disabled")
		return &Cache{ctx: context.Background()}
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache enabled")
	return &Cache{client: client, ctx: context.Background()}
}

func (c *Cache) Enabled() bool {
	return c.client != nil
}

// Get returns the cached value, or "" on a miss. Only transport failures are
// reported as errors.
func (c *Cache) Get(key string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	val, err := c.client.Get(c.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *Cache) Set(key, value string, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Set(c.ctx, key, value, ttl).Err()
}

func (c *Cache) Del(key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(c.ctx, key).Err()
}
