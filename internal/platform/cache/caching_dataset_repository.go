// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"carbon_backend/internal/feature/datasets/domain/entity"
	"carbon_backend/internal/feature/datasets/usecase"
)

// CachingDatasetRepository decorates a WritableDatasetRepository with
// Redis caching. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. The
// datasets change at most daily, so read results are cached until the
// next refresh window and invalidated on upsert.
type CachingDatasetRepository struct {
	inner     usecase.WritableDatasetRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the repository interface.
var _ usecase.WritableDatasetRepository = (*CachingDatasetRepository)(nil)

// NewCachingDatasetRepository decorates a dataset repository with Redis caching.
// If ttl is 0, it defaults to 6 hours. If namespace is empty, it uses "datasets".
func NewCachingDatasetRepository(rdb *redis.Client, ttl time.Duration, inner usecase.WritableDatasetRepository, namespace string) *CachingDatasetRepository {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	if namespace == "" {
		namespace = "datasets"
	}
	return &CachingDatasetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch writes points to the underlying repository and invalidates
// the cache entries of every dataset touched by the batch.
func (c *CachingDatasetRepository) UpsertBatch(ctx context.Context, points []entity.EmissionPoint) error {
	if err := c.inner.UpsertBatch(ctx, points); err != nil {
		return err
	}
	if c.rdb == nil || len(points) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	for _, p := range points {
		prefix := c.cacheKeyPrefix(p.Dataset)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		_ = c.deleteByPattern(ctx, prefix+"*") // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// FindByDataset retrieves points, checking the cache first and falling
// back to the database.
func (c *CachingDatasetRepository) FindByDataset(ctx context.Context, dataset string, minYear int) ([]entity.EmissionPoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByDataset(ctx, dataset, minYear)
	}

	key := c.cacheKey(dataset, minYear)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.EmissionPoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByDataset(ctx, dataset, minYear)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingDatasetRepository) cacheKey(dataset string, minYear int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(dataset), minYear)
}

// cacheKeyPrefix generates a prefix for invalidating a dataset's cache entries.
func (c *CachingDatasetRepository) cacheKeyPrefix(dataset string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(dataset))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingDatasetRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
