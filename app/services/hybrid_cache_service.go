package services

import (
	"context"

	"github.com/map-api/internal/geocode"
	"go.uber.org/zap"
)

// HybridCacheService layers the in-process LRU (L1) in front of Redis (L2).
// L1 misses that hit L2 are promoted back into L1.
type HybridCacheService struct {
	l1     IGeocodeCache
	l2     IGeocodeCache
	logger *zap.Logger
}

// NewHybridCacheService composes the two cache layers.
func NewHybridCacheService(l1, l2 IGeocodeCache, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		l1:     l1,
		l2:     l2,
		logger: logger,
	}
}

// Get checks L1 first, then L2.
func (hcs *HybridCacheService) Get(ctx context.Context, key string) (*geocode.Result, bool, error) {
	if result, found, err := hcs.l1.Get(ctx, key); err == nil && found {
		return result, true, nil
	}

	result, found, err := hcs.l2.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	// Promote to L1
	if err := hcs.l1.Set(ctx, key, result); err != nil {
		hcs.logger.Warn("L1 promote failed", zap.Error(err), zap.String("key", key))
	}

	return result, true, nil
}

// Set writes through both layers.
func (hcs *HybridCacheService) Set(ctx context.Context, key string, result *geocode.Result) error {
	if err := hcs.l1.Set(ctx, key, result); err != nil {
		hcs.logger.Warn("L1 set failed", zap.Error(err), zap.String("key", key))
	}
	return hcs.l2.Set(ctx, key, result)
}

// Close closes both layers.
func (hcs *HybridCacheService) Close() error {
	if err := hcs.l1.Close(); err != nil {
		hcs.logger.Warn("L1 close failed", zap.Error(err))
	}
	return hcs.l2.Close()
}
