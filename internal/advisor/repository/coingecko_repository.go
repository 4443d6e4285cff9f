package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

const (
	providerCoinGecko = "coingecko"

	coinGeckoMarketsQuery = "vs_currency=usd&order=market_cap_desc&per_page=10&page=1&sparkline=false&locale=en"
)

// coinGeckoRepository is an implementation of MarketDataRepository backed by the CoinGecko markets API.
type coinGeckoRepository struct {
	client         *http.Client
	baseURL        string
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewCoinGeckoRepository creates a new instance of coinGeckoRepository.
func NewCoinGeckoRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	perRequest := time.Minute / time.Duration(cfg.CoinGecko.MaxRequestPerMinute)
	return &coinGeckoRepository{
		client: &http.Client{
			Timeout: cfg.CoinGecko.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.CoinGecko.BaseURL, "/"),
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(perRequest), 1),
	}
}

// FetchTopAssets returns the top ten assets by market cap in USD.
func (r *coinGeckoRepository) FetchTopAssets(ctx context.Context) (assets []dto.Asset, err error) {
	ctx, span := tracing.StartSpan(ctx, "coingecko.FetchTopAssets")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.UpstreamCalls.WithLabelValues(providerCoinGecko, metrics.Status(err)).Inc()
		metrics.UpstreamLatency.WithLabelValues(providerCoinGecko).Observe(time.Since(start).Seconds())
		tracing.RecordError(span, err)
	}()

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	apiURL := fmt.Sprintf("%s/coins/markets?%s", r.baseURL, coinGeckoMarketsQuery)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to send request to CoinGecko", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send request to CoinGecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.logger.WarnContext(ctx, "Received non-OK response from CoinGecko",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(body)),
		)
		return nil, fmt.Errorf("received non-OK response from CoinGecko: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&assets); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	span.SetAttributes(attribute.Int("assets.count", len(assets)))
	r.logger.DebugContext(ctx, "Fetched market data",
		logger.IntField("count", len(assets)),
		logger.DurationField("elapsed", time.Since(start)),
	)
	return assets, nil
}
