package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/internal/advisor/sentiment"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/utils"

	"github.com/google/uuid"
)

const (
	aiNewsTitle  = "Gemini AI Generated News"
	aiNewsSource = "AI Analysis"
)

// NewsService provides crypto headlines with sentiment.
type NewsService interface {
	GetNews(ctx context.Context) *dto.NewsResponse
	GetAINews(ctx context.Context) []dto.CryptoNews
}

// NewNewsService creates a new news service.
func NewNewsService(feedRepo repository.NewsFeedRepository, relay Relay, cfg *config.Config, log *logger.Logger) NewsService {
	return &newsService{feedRepo: feedRepo, relay: relay, cfg: cfg, logger: log}
}

type newsService struct {
	feedRepo repository.NewsFeedRepository
	relay    Relay
	cfg      *config.Config
	logger   *logger.Logger
}

// GetNews reads every configured feed concurrently and merges the results,
// newest first. When nothing could be read the fixed mock list is served.
func (s *newsService) GetNews(ctx context.Context) *dto.NewsResponse {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		items []dto.CryptoNews
	)

	for _, feedURL := range s.cfg.News.Feeds {
		wg.Add(1)
		utils.GoSafe(s.logger, func() {
			defer wg.Done()
			news, err := s.feedRepo.FetchFeed(ctx, feedURL, s.cfg.News.MaxItems)
			if err != nil {
				return
			}
			mu.Lock()
			items = append(items, news...)
			mu.Unlock()
		})
	}
	wg.Wait()

	if len(items) == 0 {
		s.logger.WarnContext(ctx, "No feed items available, serving mock news", logger.IntField("feeds", len(s.cfg.News.Feeds)))
		metrics.Fallbacks.WithLabelValues("news").Inc()
		return &dto.NewsResponse{Items: MockNews(utils.TimeNowUTC()), Fallback: true}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if len(items) > s.cfg.News.MaxItems {
		items = items[:s.cfg.News.MaxItems]
	}
	for i := range items {
		items[i].Sentiment, _ = sentiment.Classify(items[i].Title + " " + items[i].Summary)
	}
	return &dto.NewsResponse{Items: items}
}

// GetAINews asks the text generator for headlines. It returns a single
// neutral item carrying the reply, or nothing when the generator failed.
func (s *newsService) GetAINews(ctx context.Context) []dto.CryptoNews {
	reply, ok := s.relay.Ask(ctx, repository.NewsPrompt)
	if !ok {
		return []dto.CryptoNews{}
	}
	return []dto.CryptoNews{{
		ID:          uuid.NewString(),
		Title:       aiNewsTitle,
		URL:         "#",
		Source:      aiNewsSource,
		PublishedAt: utils.TimeNowUTC(),
		Sentiment:   dto.SentimentNeutral,
		Summary:     utils.Truncate(utils.SafeParagraphs(reply), 600),
	}}
}

// MockNews returns the fixed headline list, dated relative to now.
func MockNews(now time.Time) []dto.CryptoNews {
	return []dto.CryptoNews{
		{
			ID:          "1",
			Title:       "Bitcoin Surges Past $60K as Institutional Adoption Grows",
			URL:         "#",
			Source:      "CryptoNews",
			PublishedAt: now.Add(-1 * time.Hour),
			Sentiment:   dto.SentimentPositive,
			Summary:     "Bitcoin has surged past $60,000 as institutional investors continue to show interest in the leading cryptocurrency.",
		},
		{
			ID:          "2",
			Title:       "Ethereum 2.0 Upgrade Expected to Improve Network Efficiency",
			URL:         "#",
			Source:      "CoinDesk",
			PublishedAt: now.Add(-2 * time.Hour),
			Sentiment:   dto.SentimentPositive,
			Summary:     "The Ethereum 2.0 upgrade is on track and expected to significantly improve the network's efficiency and scalability.",
		},
		{
			ID:          "3",
			Title:       "Regulators Debate New Crypto Taxation Framework",
			URL:         "#",
			Source:      "Bloomberg",
			PublishedAt: now.Add(-3 * time.Hour),
			Sentiment:   dto.SentimentNeutral,
			Summary:     "Regulators across several countries are discussing potential frameworks for cryptocurrency taxation and reporting.",
		},
		{
			ID:          "4",
			Title:       "Solana Network Experiences Brief Outage, Quickly Recovered",
			URL:         "#",
			Source:      "CryptoReport",
			PublishedAt: now.Add(-4 * time.Hour),
			Sentiment:   dto.SentimentNegative,
			Summary:     "The Solana blockchain experienced a brief outage due to high transaction volumes but quickly recovered within hours.",
		},
	}
}
