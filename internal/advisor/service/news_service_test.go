package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewsService_GetNews_MergesFeeds(t *testing.T) {
	cfg := testConfig()
	cfg.News.Feeds = []string{"https://a.example/rss", "https://b.example/rss", "https://c.example/rss"}
	cfg.News.MaxItems = 3

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	feedRepo := new(mockNewsFeedRepo)
	feedRepo.On("FetchFeed", mock.Anything, "https://a.example/rss", 3).Return([]dto.CryptoNews{
		{ID: "a1", Title: "Bitcoin rally turns positive", PublishedAt: base.Add(-1 * time.Hour)},
		{ID: "a2", Title: "Quiet weekend", PublishedAt: base.Add(-5 * time.Hour)},
	}, nil)
	feedRepo.On("FetchFeed", mock.Anything, "https://b.example/rss", 3).Return([]dto.CryptoNews{
		{ID: "b1", Title: "Exchange hack", Summary: "A negative week for security", PublishedAt: base},
		{ID: "b2", Title: "Layer 2 update", PublishedAt: base.Add(-2 * time.Hour)},
	}, nil)
	feedRepo.On("FetchFeed", mock.Anything, "https://c.example/rss", 3).Return(nil, errors.New("timeout"))

	svc := NewNewsService(feedRepo, new(mockRelay), cfg, logger.NewNop())
	resp := svc.GetNews(context.Background())

	assert.False(t, resp.Fallback)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "b1", resp.Items[0].ID)
	assert.Equal(t, "a1", resp.Items[1].ID)
	assert.Equal(t, "b2", resp.Items[2].ID)

	assert.Equal(t, dto.SentimentNegative, resp.Items[0].Sentiment)
	assert.Equal(t, dto.SentimentPositive, resp.Items[1].Sentiment)
	assert.Equal(t, dto.SentimentNeutral, resp.Items[2].Sentiment)
}

func TestNewsService_GetNews_Fallback(t *testing.T) {
	cfg := testConfig()
	cfg.News.Feeds = []string{"https://a.example/rss"}

	feedRepo := new(mockNewsFeedRepo)
	feedRepo.On("FetchFeed", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("dns"))

	svc := NewNewsService(feedRepo, new(mockRelay), cfg, logger.NewNop())
	resp := svc.GetNews(context.Background())

	assert.True(t, resp.Fallback)
	require.Len(t, resp.Items, 4)
	assert.Equal(t, "Bitcoin Surges Past $60K as Institutional Adoption Grows", resp.Items[0].Title)
}

func TestNewsService_GetNews_NoFeedsConfigured(t *testing.T) {
	svc := NewNewsService(new(mockNewsFeedRepo), new(mockRelay), testConfig(), logger.NewNop())
	resp := svc.GetNews(context.Background())

	assert.True(t, resp.Fallback)
	assert.Len(t, resp.Items, 4)
}

func TestNewsService_GetAINews(t *testing.T) {
	relay := new(mockRelay)
	relay.On("Ask", mock.Anything, repository.NewsPrompt).Return("1. ETF inflows\n2. Upgrade ships", true)

	svc := NewNewsService(new(mockNewsFeedRepo), relay, testConfig(), logger.NewNop())
	items := svc.GetAINews(context.Background())

	require.Len(t, items, 1)
	assert.Equal(t, aiNewsTitle, items[0].Title)
	assert.Equal(t, aiNewsSource, items[0].Source)
	assert.Equal(t, dto.SentimentNeutral, items[0].Sentiment)
	assert.Equal(t, "1. ETF inflows\n2. Upgrade ships", items[0].Summary)
	assert.NotEmpty(t, items[0].ID)
}

func TestNewsService_GetAINews_RelayFailure(t *testing.T) {
	relay := new(mockRelay)
	relay.On("Ask", mock.Anything, mock.Anything).Return(RelayFallbackText, false)

	svc := NewNewsService(new(mockNewsFeedRepo), relay, testConfig(), logger.NewNop())
	items := svc.GetAINews(context.Background())

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMockNews(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	items := MockNews(now)

	require.Len(t, items, 4)
	for i, item := range items {
		assert.Equal(t, now.Add(-time.Duration(i+1)*time.Hour), item.PublishedAt)
	}
	assert.Equal(t, dto.SentimentNegative, items[3].Sentiment)
}
