package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sumPercentages(rec dto.PortfolioRecommendation) int {
	total := 0
	for _, a := range rec.Allocations {
		total += a.Percentage
	}
	return total
}

func coinIDs(rec dto.PortfolioRecommendation) []string {
	ids := make([]string, 0, len(rec.Allocations))
	for _, a := range rec.Allocations {
		ids = append(ids, a.CoinID)
	}
	return ids
}

func TestRecommendationService_Recommend(t *testing.T) {
	marketSvc := new(mockMarketService)
	sentimentSvc := new(mockSentimentService)
	marketSvc.On("GetTopAssets", mock.Anything).Return(&dto.MarketSnapshot{Assets: FallbackAssets(), Fallback: true})
	sentimentSvc.On("Current", mock.Anything, "").Return(dto.MarketSentiment{Overall: dto.SentimentPositive, Score: 65}, nil)

	svc := NewRecommendationService(marketSvc, sentimentSvc, nil, logger.NewNop())
	resp, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		RiskProfile: dto.RiskMedium,
		Timeframe:   dto.TimeframeMedium,
	})
	require.NoError(t, err)

	assert.True(t, resp.AssetsFallback)
	assert.Equal(t, dto.SentimentPositive, resp.Sentiment.Overall)
	assert.Equal(t, 100, sumPercentages(resp.Recommendation))
	assert.Len(t, resp.Recommendation.Allocations, 5)
	for _, a := range resp.Recommendation.Allocations {
		assert.NotEmpty(t, a.Reasoning)
	}
}

func TestRecommendationService_Recommend_AssetIDsAndOverride(t *testing.T) {
	marketSvc := new(mockMarketService)
	sentimentSvc := new(mockSentimentService)
	marketSvc.On("GetTopAssets", mock.Anything).Return(&dto.MarketSnapshot{Assets: FallbackAssets()})

	override := &dto.MarketSentiment{Overall: dto.SentimentNegative, Score: -40}
	svc := NewRecommendationService(marketSvc, sentimentSvc, nil, logger.NewNop())
	resp, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		RiskProfile: dto.RiskLow,
		Timeframe:   dto.TimeframeLong,
		AssetIDs:    []string{"ethereum", "bitcoin", "tether"},
		Sentiment:   override,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"ethereum", "bitcoin", "tether"}, coinIDs(resp.Recommendation))
	assert.Equal(t, *override, resp.Sentiment)
	assert.Equal(t, 100, sumPercentages(resp.Recommendation))
	sentimentSvc.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
}

func TestRecommendationService_Recommend_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  dto.RecommendationRequest
	}{
		{"risk", dto.RecommendationRequest{RiskProfile: "extreme", Timeframe: dto.TimeframeShort}},
		{"timeframe", dto.RecommendationRequest{RiskProfile: dto.RiskHigh, Timeframe: "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRecommendationService(new(mockMarketService), new(mockSentimentService), nil, logger.NewNop())
			_, err := svc.Recommend(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRecommendationService_Recommend_UnknownSentimentSource(t *testing.T) {
	marketSvc := new(mockMarketService)
	sentimentSvc := new(mockSentimentService)
	marketSvc.On("GetTopAssets", mock.Anything).Return(&dto.MarketSnapshot{Assets: FallbackAssets()})
	sentimentSvc.On("Current", mock.Anything, "oracle").Return(dto.MarketSentiment{}, ErrInvalidInput)

	svc := NewRecommendationService(marketSvc, sentimentSvc, nil, logger.NewNop())
	_, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		RiskProfile:     dto.RiskHigh,
		Timeframe:       dto.TimeframeShort,
		SentimentSource: "oracle",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecommendationService_Recommend_Notify(t *testing.T) {
	marketSvc := new(mockMarketService)
	sentimentSvc := new(mockSentimentService)
	notifier := new(mockNotifier)
	marketSvc.On("GetTopAssets", mock.Anything).Return(&dto.MarketSnapshot{Assets: FallbackAssets()})
	sentimentSvc.On("Current", mock.Anything, "").Return(dto.MarketSentiment{Overall: dto.SentimentNeutral}, nil)
	notifier.On("SendMessage", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Portfolio Recommendation")
	})).Return(errors.New("telegram unavailable"))

	svc := NewRecommendationService(marketSvc, sentimentSvc, notifier, logger.NewNop())
	_, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		RiskProfile: dto.RiskHigh,
		Timeframe:   dto.TimeframeHodl,
		Notify:      true,
	})

	// notification failures are logged, not returned
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestSelectAssets(t *testing.T) {
	snapshot := []dto.Asset{{ID: "bitcoin", Name: "Bitcoin"}, {ID: "ethereum", Name: "Ethereum"}}

	assert.Equal(t, snapshot, selectAssets(snapshot, nil))

	got := selectAssets(snapshot, []string{"dogecoin", "bitcoin"})
	assert.Equal(t, []dto.Asset{{ID: "dogecoin"}, {ID: "bitcoin", Name: "Bitcoin"}}, got)
}
