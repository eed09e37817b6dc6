package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modavn/catalog_api/internal/models"
)

const filterValuesKey = "catalog:filter-values"

// FilterValuesCache caches the aggregated filter option lists (distinct
// colors/sizes and all prices) so listing them does not scan every variant
// on each request. Variant writes invalidate it; the refresh worker rewrites
// it periodically.
type FilterValuesCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewFilterValuesCache creates a new FilterValuesCache.
func NewFilterValuesCache(redis *RedisClient, ttl time.Duration) *FilterValuesCache {
	return &FilterValuesCache{redis: redis, ttl: ttl}
}

// Get retrieves the cached filter values, or an error on a miss.
func (c *FilterValuesCache) Get(ctx context.Context) (*models.FilterValues, error) {
	raw, err := c.redis.Get(ctx, filterValuesKey)
	if err != nil {
		return nil, err
	}
	var v models.FilterValues
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter values: %w", err)
	}
	return &v, nil
}

// Set stores the filter values with the configured TTL.
func (c *FilterValuesCache) Set(ctx context.Context, v *models.FilterValues) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal filter values: %w", err)
	}
	return c.redis.Set(ctx, filterValuesKey, string(raw), c.ttl)
}

// Invalidate drops the cached filter values.
func (c *FilterValuesCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, filterValuesKey)
}
