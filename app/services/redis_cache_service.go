package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/map-api/internal/geocode"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCacheService is the shared L2 cache. Geocoded coordinates for a given
// address are stable, so a long TTL is safe.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration
}

// NewRedisCacheService connects to Redis and verifies the connection.
func NewRedisCacheService(redisURL string, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis URL 파싱 실패: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis 연결 실패: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "map_api:geocode:",
		ttl:    24 * time.Hour,
	}, nil
}

// Get looks up a cached geocode result.
func (rcs *RedisCacheService) Get(ctx context.Context, key string) (*geocode.Result, bool, error) {
	val, err := rcs.client.Get(ctx, rcs.prefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("Redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	var result geocode.Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("Redis cache unmarshal failed", zap.Error(err))
		return nil, false, err
	}

	rcs.logger.Debug("Redis cache hit", zap.String("key", key))
	return &result, true, nil
}

// Set stores a geocode result with the default TTL.
func (rcs *RedisCacheService) Set(ctx context.Context, key string, result *geocode.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache 데이터 마샬 실패: %w", err)
	}

	if err := rcs.client.Set(ctx, rcs.prefix+key, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("Redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}

	return nil
}

// Close closes the Redis connection.
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
