// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/everupward248/hackathon-oct25/internal/common/database"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/metrics"
	"github.com/everupward248/hackathon-oct25/internal/models"
)

// Provider is what the workers see: a read-only view of the job catalog.
// Store satisfies it directly; Cache layers Redis on top.
type Provider interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	JobsByIndustry(ctx context.Context, industry string) ([]models.Job, error)
}

// Cache is a read-through Redis cache over a catalog Provider. Cache
// failures degrade to the underlying store; the catalog changes rarely so
// a stale-window TTL is good enough.
type Cache struct {
	source Provider
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCache(source Provider, rdb *database.RedisClient, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{source: source, redis: rdb, ttl: ttl, logger: log}
}

const (
	keyAllJobs        = "catalog:jobs:all"
	keyJobPrefix      = "catalog:job:"
	keyIndustryPrefix = "catalog:industry:"
)

func (c *Cache) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if c.lookup(ctx, keyAllJobs, &jobs) {
		return jobs, nil
	}

	jobs, err := c.source.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, keyAllJobs, jobs)
	return jobs, nil
}

func (c *Cache) GetJob(ctx context.Context, id string) (*models.Job, error) {
	key := keyJobPrefix + id

	var job models.Job
	if c.lookup(ctx, key, &job) {
		return &job, nil
	}

	found, err := c.source.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, found)
	return found, nil
}

func (c *Cache) JobsByIndustry(ctx context.Context, industry string) ([]models.Job, error) {
	key := keyIndustryPrefix + industry

	var jobs []models.Job
	if c.lookup(ctx, key, &jobs) {
		return jobs, nil
	}

	jobs, err := c.source.JobsByIndustry(ctx, industry)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, jobs)
	return jobs, nil
}

// lookup fetches and decodes a cached value, reporting whether it was a
// usable hit. Errors are logged and treated as misses.
func (c *Cache) lookup(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.redis.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CatalogCacheHits.WithLabelValues("miss").Inc()
		return false
	}
	if err != nil {
		metrics.CatalogCacheHits.WithLabelValues("error").Inc()
		c.logger.WithError(err).Warn("catalog cache read failed", map[string]interface{}{"key": key})
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		metrics.CatalogCacheHits.WithLabelValues("error").Inc()
		c.logger.WithError(err).Warn("catalog cache entry corrupt", map[string]interface{}{"key": key})
		return false
	}

	metrics.CatalogCacheHits.WithLabelValues("hit").Inc()
	return true
}

func (c *Cache) put(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).Warn("catalog cache encode failed", map[string]interface{}{"key": key})
		return
	}
	if err := c.redis.Client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("catalog cache write failed", map[string]interface{}{"key": key})
	}
}
