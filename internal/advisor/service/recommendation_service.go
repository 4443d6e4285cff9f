package service

import (
	"context"
	"fmt"

	"crypto-advisor/internal/advisor/allocation"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/telegram"
	"crypto-advisor/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// RecommendationService builds portfolio allocations from live inputs.
type RecommendationService interface {
	Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error)
}

// NewRecommendationService creates a new recommendation service. notifier may be nil.
func NewRecommendationService(marketSvc MarketService, sentimentSvc SentimentService, notifier telegram.Notifier, log *logger.Logger) RecommendationService {
	return &recommendationService{
		marketSvc:    marketSvc,
		sentimentSvc: sentimentSvc,
		notifier:     notifier,
		logger:       log,
	}
}

type recommendationService struct {
	marketSvc    MarketService
	sentimentSvc SentimentService
	notifier     telegram.Notifier
	logger       *logger.Logger
}

// Recommend resolves assets and sentiment for the request and runs the allocation engine.
func (s *recommendationService) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "recommendation.Recommend",
		attribute.String("risk_profile", string(req.RiskProfile)),
		attribute.String("timeframe", string(req.Timeframe)),
	)
	defer span.End()

	if !req.RiskProfile.Valid() {
		return nil, fmt.Errorf("%w: unknown risk profile %q", ErrInvalidInput, req.RiskProfile)
	}
	if !req.Timeframe.Valid() {
		return nil, fmt.Errorf("%w: unknown timeframe %q", ErrInvalidInput, req.Timeframe)
	}

	snapshot := s.marketSvc.GetTopAssets(ctx)
	assets := selectAssets(snapshot.Assets, req.AssetIDs)

	var marketSentiment dto.MarketSentiment
	if req.Sentiment != nil {
		marketSentiment = *req.Sentiment
	} else {
		var err error
		marketSentiment, err = s.sentimentSvc.Current(ctx, req.SentimentSource)
		if err != nil {
			return nil, err
		}
	}

	rec, err := allocation.Recommend(req.RiskProfile, req.Timeframe, marketSentiment, assets)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	metrics.Recommendations.WithLabelValues(string(req.RiskProfile), string(marketSentiment.Overall)).Inc()

	if req.Notify && s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatRecommendationForTelegram(rec, marketSentiment)); err != nil {
			s.logger.ErrorContext(ctx, "Failed to send recommendation to telegram", logger.ErrorField(err))
		}
	}

	return &dto.RecommendationResponse{
		Recommendation: *rec,
		Sentiment:      marketSentiment,
		AssetsFallback: snapshot.Fallback,
	}, nil
}

// selectAssets keeps the snapshot order when ids is empty; otherwise it follows
// ids, using id-only assets for ids missing from the snapshot.
func selectAssets(snapshot []dto.Asset, ids []string) []dto.Asset {
	if len(ids) == 0 {
		return snapshot
	}

	byID := make(map[string]dto.Asset, len(snapshot))
	for _, a := range snapshot {
		byID[a.ID] = a
	}

	out := make([]dto.Asset, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
			continue
		}
		out = append(out, dto.Asset{ID: id})
	}
	return out
}
