package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/common"
	"crypto-advisor/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// marketCacheRepository keeps the snapshot in process memory and, when a
// Redis client is configured, in Redis so every instance sees the same data.
type marketCacheRepository struct {
	redisClient   *redis.Client
	inmemoryCache *cache.Cache
	logger        *logger.Logger
}

// NewMarketCacheRepository creates a new MarketCacheRepository. redisClient may be nil.
func NewMarketCacheRepository(redisClient *redis.Client, log *logger.Logger) MarketCacheRepository {
	return &marketCacheRepository{
		redisClient:   redisClient,
		inmemoryCache: cache.New(5*time.Minute, 10*time.Minute),
		logger:        log,
	}
}

// GetSnapshot reads the local copy first, then Redis. A Redis hit refreshes the local copy.
func (r *marketCacheRepository) GetSnapshot(ctx context.Context) (*dto.MarketSnapshot, error) {
	if v, ok := r.inmemoryCache.Get(common.LocalCacheKeyMarketSnapshot); ok {
		snapshot := v.(dto.MarketSnapshot)
		return &snapshot, nil
	}

	if r.redisClient == nil {
		return nil, ErrNotFound
	}

	raw, err := r.redisClient.Get(ctx, common.RedisKeyMarketSnapshot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read market snapshot from redis: %w", err)
	}

	var snapshot dto.MarketSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode market snapshot: %w", err)
	}

	if ttl, err := r.redisClient.TTL(ctx, common.RedisKeyMarketSnapshot).Result(); err == nil && ttl > 0 {
		r.inmemoryCache.Set(common.LocalCacheKeyMarketSnapshot, snapshot, ttl)
	}
	return &snapshot, nil
}

// SetSnapshot overwrites the snapshot in both tiers.
func (r *marketCacheRepository) SetSnapshot(ctx context.Context, snapshot *dto.MarketSnapshot, ttl time.Duration) error {
	r.inmemoryCache.Set(common.LocalCacheKeyMarketSnapshot, *snapshot, ttl)

	if r.redisClient == nil {
		return nil
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode market snapshot: %w", err)
	}
	if err := r.redisClient.Set(ctx, common.RedisKeyMarketSnapshot, raw, ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "Failed to write market snapshot to redis", logger.ErrorField(err))
		return fmt.Errorf("failed to write market snapshot to redis: %w", err)
	}
	return nil
}
