// Package storage persists named blobs of serialized text. Each collection of
// the data layer is stored whole under a single key; there is no atomicity
// across keys.
package storage

import (
	"context"
	"fmt"

	"sharebite/internal/config"
)

// Blob keys for the persisted collections. KeyRequests holds the flattened
// request snapshot; it is written on every request mutation and never read
// back, requests are reconstructed from posts on load.
const (
	KeyUsers     = "sharebite_users"
	KeyFoodPosts = "sharebite_food_posts"
	KeyOrders    = "sharebite_orders"
	KeyRequests  = "sharebite_requests"
)

// Blobs is the persistence contract: get or set a named blob of text.
// Absence of a key is reported through the boolean, not an error.
type Blobs interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Open selects and connects a blob backend according to the configuration.
func Open(ctx context.Context, cfg *config.Config) (Blobs, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return OpenPostgres(cfg)
	case config.DriverRedis:
		return OpenRedis(ctx, cfg.RedisURL)
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
