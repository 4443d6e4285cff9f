package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo           *echo.Echo
	market         *mockMarketService
	sentiment      *mockSentimentService
	recommendation *mockRecommendationService
	chat           *mockChatService
	news           *mockNewsService
	portfolio      *mockPortfolioService
}

func newTestServer() *testServer {
	s := &testServer{
		echo:           echo.New(),
		market:         new(mockMarketService),
		sentiment:      new(mockSentimentService),
		recommendation: new(mockRecommendationService),
		chat:           new(mockChatService),
		news:           new(mockNewsService),
		portfolio:      new(mockPortfolioService),
	}
	log := logger.NewNop()
	RegisterRoutes(s.echo, Handlers{
		Market:         NewMarketHandler(s.market, s.sentiment, log),
		Recommendation: NewRecommendationHandler(s.recommendation, log),
		Chat:           NewChatHandler(s.chat, log),
		News:           NewNewsHandler(s.news, log),
		Portfolio:      NewPortfolioHandler(s.portfolio, log),
	})
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMarketHandler_GetAssets(t *testing.T) {
	s := newTestServer()
	s.market.On("GetTopAssets", mock.Anything).Return(&dto.MarketSnapshot{
		Assets:   []dto.Asset{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"}},
		Fallback: true,
	})

	rec := s.do(http.MethodGet, "/api/v1/market/assets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.AssetListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Fallback)
	require.Len(t, body.Assets, 1)
	assert.Equal(t, "bitcoin", body.Assets[0].ID)
}

func TestMarketHandler_GetAsset(t *testing.T) {
	s := newTestServer()
	s.market.On("GetAsset", mock.Anything, "bitcoin").Return(&dto.Asset{ID: "bitcoin", Name: "Bitcoin"}, nil)
	s.market.On("GetAsset", mock.Anything, "dogecoin").Return(nil, fmt.Errorf("asset %q: %w", "dogecoin", service.ErrNotFound))

	rec := s.do(http.MethodGet, "/api/v1/market/assets/bitcoin", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/market/assets/dogecoin", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `asset "dogecoin": not found`, decodeError(t, rec))
}

func TestMarketHandler_Refresh(t *testing.T) {
	s := newTestServer()
	s.market.On("Refresh", mock.Anything).Return(&dto.MarketSnapshot{Assets: []dto.Asset{{ID: "ethereum"}}})

	rec := s.do(http.MethodPost, "/api/v1/market/refresh", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	s.market.AssertExpectations(t)
}

func TestMarketHandler_GetSentiment(t *testing.T) {
	s := newTestServer()
	s.sentiment.On("Current", mock.Anything, "ai").Return(dto.MarketSentiment{Overall: dto.SentimentNegative, Score: -50}, nil)
	s.sentiment.On("Current", mock.Anything, "moon").Return(dto.MarketSentiment{}, fmt.Errorf("%w: unknown sentiment source %q", service.ErrInvalidInput, "moon"))

	rec := s.do(http.MethodGet, "/api/v1/market/sentiment?source=ai", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.MarketSentiment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.SentimentNegative, body.Overall)

	rec = s.do(http.MethodGet, "/api/v1/market/sentiment?source=moon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendationHandler(t *testing.T) {
	s := newTestServer()
	s.recommendation.On("Recommend", mock.Anything, mock.MatchedBy(func(req *dto.RecommendationRequest) bool {
		return req.RiskProfile == dto.RiskHigh && req.Timeframe == dto.TimeframeShort
	})).Return(&dto.RecommendationResponse{
		Recommendation: dto.PortfolioRecommendation{
			RiskProfile: dto.RiskHigh,
			Timeframe:   dto.TimeframeShort,
			Allocations: []dto.AllocationEntry{{CoinID: "bitcoin", Percentage: 100, Reasoning: "only asset"}},
		},
	}, nil)
	s.recommendation.On("Recommend", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidInput)

	rec := s.do(http.MethodPost, "/api/v1/recommendations", `{"risk_profile":"high","timeframe":"short"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 100, body.Recommendation.Allocations[0].Percentage)

	rec = s.do(http.MethodPost, "/api/v1/recommendations", `{"risk_profile":"extreme","timeframe":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/recommendations", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", decodeError(t, rec))
}

func TestChatHandler_CreateSession(t *testing.T) {
	s := newTestServer()
	s.chat.On("StartSession", mock.Anything, &dto.CreateSessionRequest{}).Return(&dto.ChatSession{ID: "s-1", Channel: dto.ChannelAssistant}, nil)
	s.chat.On("StartSession", mock.Anything, &dto.CreateSessionRequest{Channel: dto.ChannelAdvisor}).Return(&dto.ChatSession{ID: "s-2", Channel: dto.ChannelAdvisor}, nil)

	rec := s.do(http.MethodPost, "/api/v1/chat/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var session dto.ChatSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "s-1", session.ID)

	rec = s.do(http.MethodPost, "/api/v1/chat/sessions", `{"channel":"advisor"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, dto.ChannelAdvisor, session.Channel)
}

func TestChatHandler_Messages(t *testing.T) {
	s := newTestServer()
	s.chat.On("GetSession", mock.Anything, "s-1").Return(&dto.ChatSession{
		ID:       "s-1",
		Messages: []dto.ChatMessage{{ID: "m-1", Type: dto.MessageTypeBot, Text: "Hello!"}},
	}, nil)
	s.chat.On("GetSession", mock.Anything, "gone").Return(nil, service.ErrNotFound)

	rec := s.do(http.MethodGet, "/api/v1/chat/sessions/s-1/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []dto.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Hello!", messages[0].Text)

	rec = s.do(http.MethodGet, "/api/v1/chat/sessions/gone/messages", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatHandler_DeleteSession(t *testing.T) {
	s := newTestServer()
	s.chat.On("EndSession", mock.Anything, "s-1").Return(nil)
	s.chat.On("EndSession", mock.Anything, "gone").Return(service.ErrNotFound)

	rec := s.do(http.MethodDelete, "/api/v1/chat/sessions/s-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/chat/sessions/gone", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatHandler_SendMessages(t *testing.T) {
	s := newTestServer()
	s.chat.On("SendAdvisorMessage", mock.Anything, "s-1", "Should I buy?").Return(&dto.ChatReply{
		SessionID: "s-1",
		Reply:     dto.ChatMessage{Type: dto.MessageTypeBot, Text: "Maybe."},
	}, nil)
	s.chat.On("SendAssistantMessage", mock.Anything, "s-1", "").Return(nil, fmt.Errorf("%w: text must not be empty", service.ErrInvalidInput))

	rec := s.do(http.MethodPost, "/api/v1/chat/sessions/s-1/advisor", `{"text":"Should I buy?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var reply dto.ChatReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "Maybe.", reply.Reply.Text)

	rec = s.do(http.MethodPost, "/api/v1/chat/sessions/s-1/assistant", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid input: text must not be empty", decodeError(t, rec))
}

func TestNewsHandler(t *testing.T) {
	s := newTestServer()
	s.news.On("GetNews", mock.Anything).Return(&dto.NewsResponse{Items: []dto.CryptoNews{{ID: "1"}}, Fallback: true})
	s.news.On("GetAINews", mock.Anything).Return([]dto.CryptoNews{})

	rec := s.do(http.MethodGet, "/api/v1/news", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Fallback)

	rec = s.do(http.MethodGet, "/api/v1/news?source=ai", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"fallback":false}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/news?source=twitter", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortfolioHandler_Users(t *testing.T) {
	s := newTestServer()
	s.portfolio.On("GetUserProfile", mock.Anything, "user-123").Return(&dto.UserProfile{ID: "user-123", RiskProfile: dto.RiskMedium}, nil)
	s.portfolio.On("GetUserProfile", mock.Anything, "ghost").Return(nil, service.ErrNotFound)
	s.portfolio.On("GetInvestmentHistory", mock.Anything, "user-123").Return([]dto.InvestmentRecord{{ID: "inv-1"}}, nil)
	s.portfolio.On("Summary", mock.Anything, "user-123").Return(nil, errors.New("connection reset"))

	rec := s.do(http.MethodGet, "/api/v1/users/user-123/profile", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/users/ghost/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/users/user-123/investments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []dto.InvestmentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 1)

	// internal errors are not echoed to the client
	rec = s.do(http.MethodGet, "/api/v1/users/user-123/portfolio", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec))
}

func TestPortfolioHandler_Investments(t *testing.T) {
	s := newTestServer()
	s.portfolio.On("ExecuteInvestment", mock.Anything, &dto.ExecuteInvestmentRequest{CryptoID: "bitcoin", Amount: 0.5, Price: 60000}).
		Return(&dto.ExecuteInvestmentResponse{Success: true, Message: "Successfully invested in 0.5 bitcoin at $60000"}, nil)
	s.portfolio.On("SubmitFeedback", mock.Anything, "inv-1", mock.Anything).Return(&dto.FeedbackResponse{Success: true}, nil)
	s.portfolio.On("SubmitFeedback", mock.Anything, "missing", mock.Anything).Return(nil, service.ErrNotFound)

	rec := s.do(http.MethodPost, "/api/v1/investments", `{"crypto_id":"bitcoin","amount":0.5,"price":60000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.ExecuteInvestmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Successfully invested in 0.5 bitcoin at $60000", resp.Message)

	rec = s.do(http.MethodPost, "/api/v1/investments/inv-1/feedback", `{"performance":3.2,"success":true,"user_rating":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/investments/missing/feedback", `{"performance":0}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
