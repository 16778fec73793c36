package services

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/map-api/internal/geocode"
	"go.uber.org/zap"
)

// MemoryCacheService is the in-process L1 cache, an LRU bounded by size.
type MemoryCacheService struct {
	cache  *lru.Cache[string, *geocode.Result]
	logger *zap.Logger
}

// NewMemoryCacheService creates an LRU cache holding at most size entries.
func NewMemoryCacheService(size int, logger *zap.Logger) (*MemoryCacheService, error) {
	cache, err := lru.New[string, *geocode.Result](size)
	if err != nil {
		return nil, err
	}

	return &MemoryCacheService{
		cache:  cache,
		logger: logger,
	}, nil
}

// Get looks up a cached geocode result.
func (mcs *MemoryCacheService) Get(ctx context.Context, key string) (*geocode.Result, bool, error) {
	result, found := mcs.cache.Get(key)
	if !found {
		return nil, false, nil
	}

	mcs.logger.Debug("Memory cache hit", zap.String("key", key))
	return result, true, nil
}

// Set stores a geocode result.
func (mcs *MemoryCacheService) Set(ctx context.Context, key string, result *geocode.Result) error {
	mcs.cache.Add(key, result)
	return nil
}

// Close is a no-op for the in-process cache.
func (mcs *MemoryCacheService) Close() error {
	return nil
}
