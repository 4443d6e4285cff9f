package service

import (
	"context"
	"time"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/intent"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/internal/entity"
	"crypto-advisor/pkg/telegram"

	"github.com/stretchr/testify/mock"
)

var (
	_ repository.MarketDataRepository  = (*mockMarketDataRepo)(nil)
	_ repository.MarketCacheRepository = (*mockMarketCacheRepo)(nil)
	_ repository.AIRepository          = (*mockAIRepo)(nil)
	_ repository.UserProfileRepository = (*mockUserProfileRepo)(nil)
	_ repository.InvestmentRepository  = (*mockInvestmentRepo)(nil)
	_ repository.NewsFeedRepository    = (*mockNewsFeedRepo)(nil)
	_ Relay                            = (*mockRelay)(nil)
	_ MarketService                    = (*mockMarketService)(nil)
	_ SentimentService                 = (*mockSentimentService)(nil)
	_ Assistant                        = (*mockAssistant)(nil)
	_ telegram.Notifier                = (*mockNotifier)(nil)
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CoinGecko.SnapshotTTL = 2 * time.Minute
	cfg.CoinGecko.FallbackTTL = 15 * time.Second
	cfg.Sentiment.Source = SentimentSourceMock
	cfg.News.MaxItems = 10
	return cfg
}

type mockMarketDataRepo struct{ mock.Mock }

func (m *mockMarketDataRepo) FetchTopAssets(ctx context.Context) ([]dto.Asset, error) {
	args := m.Called(ctx)
	assets, _ := args.Get(0).([]dto.Asset)
	return assets, args.Error(1)
}

type mockMarketCacheRepo struct{ mock.Mock }

func (m *mockMarketCacheRepo) GetSnapshot(ctx context.Context) (*dto.MarketSnapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*dto.MarketSnapshot)
	return snap, args.Error(1)
}

func (m *mockMarketCacheRepo) SetSnapshot(ctx context.Context, snapshot *dto.MarketSnapshot, ttl time.Duration) error {
	return m.Called(ctx, snapshot, ttl).Error(0)
}

type mockAIRepo struct{ mock.Mock }

func (m *mockAIRepo) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockRelay struct{ mock.Mock }

func (m *mockRelay) Ask(ctx context.Context, query string) (string, bool) {
	args := m.Called(ctx, query)
	return args.String(0), args.Bool(1)
}

type mockMarketService struct{ mock.Mock }

func (m *mockMarketService) GetTopAssets(ctx context.Context) *dto.MarketSnapshot {
	return m.Called(ctx).Get(0).(*dto.MarketSnapshot)
}

func (m *mockMarketService) Refresh(ctx context.Context) *dto.MarketSnapshot {
	return m.Called(ctx).Get(0).(*dto.MarketSnapshot)
}

func (m *mockMarketService) GetAsset(ctx context.Context, id string) (*dto.Asset, error) {
	args := m.Called(ctx, id)
	asset, _ := args.Get(0).(*dto.Asset)
	return asset, args.Error(1)
}

type mockSentimentService struct{ mock.Mock }

func (m *mockSentimentService) MockSnapshot() dto.MarketSentiment {
	return m.Called().Get(0).(dto.MarketSentiment)
}

func (m *mockSentimentService) Analyze(ctx context.Context) dto.MarketSentiment {
	return m.Called(ctx).Get(0).(dto.MarketSentiment)
}

func (m *mockSentimentService) Current(ctx context.Context, source string) (dto.MarketSentiment, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(dto.MarketSentiment), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendMessage(text string) error {
	return m.Called(text).Error(0)
}

type mockUserProfileRepo struct{ mock.Mock }

func (m *mockUserProfileRepo) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*entity.UserProfile)
	return profile, args.Error(1)
}

type mockInvestmentRepo struct{ mock.Mock }

func (m *mockInvestmentRepo) FindByUserID(ctx context.Context, userID string) ([]entity.Investment, error) {
	args := m.Called(ctx, userID)
	investments, _ := args.Get(0).([]entity.Investment)
	return investments, args.Error(1)
}

func (m *mockInvestmentRepo) FindByID(ctx context.Context, id string) (*entity.Investment, error) {
	args := m.Called(ctx, id)
	investment, _ := args.Get(0).(*entity.Investment)
	return investment, args.Error(1)
}

func (m *mockInvestmentRepo) Create(ctx context.Context, investment *entity.Investment) error {
	return m.Called(ctx, investment).Error(0)
}

func (m *mockInvestmentRepo) CreateFeedback(ctx context.Context, feedback *entity.InvestmentFeedback) error {
	return m.Called(ctx, feedback).Error(0)
}

type mockNewsFeedRepo struct{ mock.Mock }

func (m *mockNewsFeedRepo) FetchFeed(ctx context.Context, feedURL string, limit int) ([]dto.CryptoNews, error) {
	args := m.Called(ctx, feedURL, limit)
	items, _ := args.Get(0).([]dto.CryptoNews)
	return items, args.Error(1)
}

type mockAssistant struct{ mock.Mock }

func (m *mockAssistant) Answer(ctx context.Context, userID string, kind intent.Intent) AssistantAnswer {
	return m.Called(ctx, userID, kind).Get(0).(AssistantAnswer)
}

// seededInvestments mirrors the demo ledger of user-123.
func seededInvestments() []entity.Investment {
	purchase := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []entity.Investment{
		{ID: "inv-1", UserID: "user-123", CryptoID: "bitcoin", Amount: 0.05, PurchasePrice: 55000, CurrentPrice: 60000, PurchaseDate: purchase, Status: "active", Performance: 9.09, Success: true},
		{ID: "inv-2", UserID: "user-123", CryptoID: "ethereum", Amount: 1.2, PurchasePrice: 3000, CurrentPrice: 3200, PurchaseDate: purchase, Status: "active", Performance: 6.67, Success: true},
		{ID: "inv-3", UserID: "user-123", CryptoID: "solana", Amount: 15, PurchasePrice: 150, CurrentPrice: 140, PurchaseDate: purchase, Status: "active", Performance: -6.67, Success: false},
	}
}
