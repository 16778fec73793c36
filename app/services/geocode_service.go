package services

import (
	"context"

	"github.com/map-api/internal/geocode"
	"go.uber.org/zap"
)

// GeocodeService fronts the resolver with the optional cache. A nil cache
// means every resolution goes to the providers.
type GeocodeService struct {
	resolver *geocode.Resolver
	cache    IGeocodeCache
	logger   *zap.Logger
}

// NewGeocodeService creates a GeocodeService; cache may be nil.
func NewGeocodeService(resolver *geocode.Resolver, cache IGeocodeCache, logger *zap.Logger) *GeocodeService {
	return &GeocodeService{
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
}

// Resolve geocodes rawAddress, consulting the cache first when one is
// configured. Cache errors are not fatal; the providers are the source of
// truth.
func (gs *GeocodeService) Resolve(ctx context.Context, rawAddress string) (*geocode.Result, error) {
	if rawAddress == "" {
		return nil, geocode.ErrNoAddress
	}

	if gs.cache != nil {
		if cached, found, err := gs.cache.Get(ctx, rawAddress); err == nil && found {
			return cached, nil
		}
	}

	result, err := gs.resolver.Resolve(ctx, rawAddress)
	if err != nil {
		return nil, err
	}

	if gs.cache != nil {
		if err := gs.cache.Set(ctx, rawAddress, result); err != nil {
			gs.logger.Warn("Geocode cache set failed",
				zap.Error(err),
				zap.String("address", rawAddress))
		}
	}

	return result, nil
}
