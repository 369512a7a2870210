package domain

import (
	"context"
	"time"
)

// CatalogProvider supplies read-only catalog snapshots. Snapshot must return
// a copy that stays stable for the caller's lifetime even if the underlying
// store is mutated concurrently.
type CatalogProvider interface {
	Snapshot(ctx context.Context) (map[string]CatalogProduct, error)
	Stores(ctx context.Context) ([]string, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
