// Package cache keeps a short-lived copy of the sorted HTE catalog in Redis
// so directory reads do not hit the document store on every request. Admin
// writes invalidate it; the snapshot watcher refreshes it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

const (
	catalogKey = "interniskolar:directory:catalog"
	catalogTTL = 5 * time.Minute
)

type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached catalog. ok is false on a miss or a decode problem;
// callers fall through to the repository either way.
func (c *CatalogCache) Get(ctx context.Context) (catalog []domain.HTE, ok bool, err error) {
	payload, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	if err := json.Unmarshal(payload, &catalog); err != nil {
		// Stale or corrupt entry; treat as a miss rather than an error.
		return nil, false, nil
	}
	return catalog, true, nil
}

// Set stores the catalog snapshot.
func (c *CatalogCache) Set(ctx context.Context, catalog []domain.HTE) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog for cache: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, payload, catalogTTL).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog after an admin write.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
