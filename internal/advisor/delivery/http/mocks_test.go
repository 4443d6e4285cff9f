package http

import (
	"context"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"

	"github.com/stretchr/testify/mock"
)

var (
	_ service.MarketService         = (*mockMarketService)(nil)
	_ service.SentimentService      = (*mockSentimentService)(nil)
	_ service.RecommendationService = (*mockRecommendationService)(nil)
	_ service.ChatService           = (*mockChatService)(nil)
	_ service.NewsService           = (*mockNewsService)(nil)
	_ service.PortfolioService      = (*mockPortfolioService)(nil)
)

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

type mockRecommendationService struct{ mock.Mock }

func (m *mockRecommendationService) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.RecommendationResponse)
	return resp, args.Error(1)
}

type mockChatService struct{ mock.Mock }

func (m *mockChatService) StartSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.ChatSession, error) {
	args := m.Called(ctx, req)
	session, _ := args.Get(0).(*dto.ChatSession)
	return session, args.Error(1)
}

func (m *mockChatService) GetSession(ctx context.Context, id string) (*dto.ChatSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*dto.ChatSession)
	return session, args.Error(1)
}

func (m *mockChatService) EndSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockChatService) SendAdvisorMessage(ctx context.Context, sessionID, text string) (*dto.ChatReply, error) {
	args := m.Called(ctx, sessionID, text)
	reply, _ := args.Get(0).(*dto.ChatReply)
	return reply, args.Error(1)
}

func (m *mockChatService) SendAssistantMessage(ctx context.Context, sessionID, text string) (*dto.ChatReply, error) {
	args := m.Called(ctx, sessionID, text)
	reply, _ := args.Get(0).(*dto.ChatReply)
	return reply, args.Error(1)
}

type mockNewsService struct{ mock.Mock }

func (m *mockNewsService) GetNews(ctx context.Context) *dto.NewsResponse {
	return m.Called(ctx).Get(0).(*dto.NewsResponse)
}

func (m *mockNewsService) GetAINews(ctx context.Context) []dto.CryptoNews {
	return m.Called(ctx).Get(0).([]dto.CryptoNews)
}

type mockPortfolioService struct{ mock.Mock }

func (m *mockPortfolioService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*dto.UserProfile)
	return profile, args.Error(1)
}

func (m *mockPortfolioService) GetInvestmentHistory(ctx context.Context, userID string) ([]dto.InvestmentRecord, error) {
	args := m.Called(ctx, userID)
	records, _ := args.Get(0).([]dto.InvestmentRecord)
	return records, args.Error(1)
}

func (m *mockPortfolioService) ExecuteInvestment(ctx context.Context, req *dto.ExecuteInvestmentRequest) (*dto.ExecuteInvestmentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ExecuteInvestmentResponse)
	return resp, args.Error(1)
}

func (m *mockPortfolioService) SubmitFeedback(ctx context.Context, investmentID string, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	args := m.Called(ctx, investmentID, req)
	resp, _ := args.Get(0).(*dto.FeedbackResponse)
	return resp, args.Error(1)
}

func (m *mockPortfolioService) Summary(ctx context.Context, userID string) (*dto.PortfolioSummary, error) {
	args := m.Called(ctx, userID)
	summary, _ := args.Get(0).(*dto.PortfolioSummary)
	return summary, args.Error(1)
}
