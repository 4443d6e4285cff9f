package service

import (
	"context"
	"errors"
	"fmt"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/tracing"
	"crypto-advisor/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
)

// MarketService serves the top-asset snapshot. Upstream failures are never
// surfaced: the fixed fallback list is served instead.
type MarketService interface {
	GetTopAssets(ctx context.Context) *dto.MarketSnapshot
	Refresh(ctx context.Context) *dto.MarketSnapshot
	GetAsset(ctx context.Context, id string) (*dto.Asset, error)
}

// NewMarketService creates a new market service.
func NewMarketService(marketRepo repository.MarketDataRepository, cacheRepo repository.MarketCacheRepository, cfg *config.Config, log *logger.Logger) MarketService {
	return &marketService{
		marketRepo: marketRepo,
		cacheRepo:  cacheRepo,
		cfg:        cfg,
		logger:     log,
	}
}

type marketService struct {
	marketRepo repository.MarketDataRepository
	cacheRepo  repository.MarketCacheRepository
	cfg        *config.Config
	logger     *logger.Logger
}

// GetTopAssets returns the cached snapshot, fetching a new one on a miss.
func (s *marketService) GetTopAssets(ctx context.Context) *dto.MarketSnapshot {
	snapshot, err := s.cacheRepo.GetSnapshot(ctx)
	if err == nil {
		return snapshot
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.WarnContext(ctx, "Failed to read market snapshot from cache", logger.ErrorField(err))
	}
	return s.Refresh(ctx)
}

// Refresh fetches live data and overwrites the cached snapshot. Fallback data
// is cached with a shorter TTL so the next call retries the provider sooner.
func (s *marketService) Refresh(ctx context.Context) *dto.MarketSnapshot {
	ctx, span := tracing.StartSpan(ctx, "market.Refresh")
	defer span.End()

	snapshot := &dto.MarketSnapshot{FetchedAt: utils.TimeNowUTC()}
	ttl := s.cfg.CoinGecko.SnapshotTTL

	assets, err := s.marketRepo.FetchTopAssets(ctx)
	switch {
	case err != nil || len(assets) == 0:
		if err == nil {
			err = errors.New("provider returned no assets")
		}
		s.logger.WarnContext(ctx, "Serving fallback market data", logger.ErrorField(err))
		metrics.Fallbacks.WithLabelValues("market_data").Inc()
		metrics.MarketRefreshes.WithLabelValues("fallback").Inc()
		snapshot.Assets = FallbackAssets()
		snapshot.Fallback = true
		ttl = s.cfg.CoinGecko.FallbackTTL
	default:
		metrics.MarketRefreshes.WithLabelValues("live").Inc()
		snapshot.Assets = assets
	}
	span.SetAttributes(attribute.Bool("market.fallback", snapshot.Fallback))

	if err := s.cacheRepo.SetSnapshot(ctx, snapshot, ttl); err != nil {
		metrics.MarketRefreshes.WithLabelValues("error").Inc()
		s.logger.WarnContext(ctx, "Failed to cache market snapshot", logger.ErrorField(err))
	}
	return snapshot
}

// GetAsset looks id up in the current snapshot.
func (s *marketService) GetAsset(ctx context.Context, id string) (*dto.Asset, error) {
	snapshot := s.GetTopAssets(ctx)
	for i := range snapshot.Assets {
		if snapshot.Assets[i].ID == id {
			asset := snapshot.Assets[i]
			return &asset, nil
		}
	}
	return nil, fmt.Errorf("asset %q: %w", id, ErrNotFound)
}
