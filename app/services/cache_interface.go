package services

import (
	"context"

	"github.com/map-api/internal/geocode"
)

// IGeocodeCache caches resolved coordinates keyed by the raw address. The
// cache is an optional layer: with caching disabled the service holds no
// state between requests.
type IGeocodeCache interface {
	// Get looks up a cached geocode result
	Get(ctx context.Context, key string) (*geocode.Result, bool, error)

	// Set stores a geocode result
	Set(ctx context.Context, key string, result *geocode.Result) error

	// Close releases the underlying connection (if any)
	Close() error
}
