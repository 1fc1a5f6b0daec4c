package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque encoded payloads so memory and Redis backends behave the same.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository provides read access to the persisted product catalog
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CountProducts(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
