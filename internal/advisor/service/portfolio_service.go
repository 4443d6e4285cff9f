package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/internal/entity"
	"crypto-advisor/pkg/common"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/telegram"
	"crypto-advisor/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PortfolioService manages user profiles, the investment ledger and feedback.
type PortfolioService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfile, error)
	GetInvestmentHistory(ctx context.Context, userID string) ([]dto.InvestmentRecord, error)
	ExecuteInvestment(ctx context.Context, req *dto.ExecuteInvestmentRequest) (*dto.ExecuteInvestmentResponse, error)
	SubmitFeedback(ctx context.Context, investmentID string, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	Summary(ctx context.Context, userID string) (*dto.PortfolioSummary, error)
}

// NewPortfolioService creates a new portfolio service. notifier may be nil.
func NewPortfolioService(profileRepo repository.UserProfileRepository, investmentRepo repository.InvestmentRepository, notifier telegram.Notifier, log *logger.Logger) PortfolioService {
	return &portfolioService{
		profileRepo:    profileRepo,
		investmentRepo: investmentRepo,
		notifier:       notifier,
		logger:         log,
	}
}

type portfolioService struct {
	profileRepo    repository.UserProfileRepository
	investmentRepo repository.InvestmentRepository
	notifier       telegram.Notifier
	logger         *logger.Logger
}

func (s *portfolioService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserProfile{
		ID:              profile.ID,
		RiskProfile:     dto.RiskProfile(profile.RiskProfile),
		InvestmentGoals: []string(profile.InvestmentGoals),
		Budget:          profile.Budget,
		Timeframe:       dto.Timeframe(profile.Timeframe),
	}, nil
}

func (s *portfolioService) GetInvestmentHistory(ctx context.Context, userID string) ([]dto.InvestmentRecord, error) {
	investments, err := s.investmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get investment history", logger.ErrorField(err), logger.StringField("user_id", userID))
		return nil, err
	}

	records := make([]dto.InvestmentRecord, 0, len(investments))
	for i := range investments {
		records = append(records, mapToInvestmentRecord(&investments[i]))
	}
	return records, nil
}

// ExecuteInvestment records a new active position at the given price.
func (s *portfolioService) ExecuteInvestment(ctx context.Context, req *dto.ExecuteInvestmentRequest) (*dto.ExecuteInvestmentResponse, error) {
	if strings.TrimSpace(req.CryptoID) == "" {
		return nil, fmt.Errorf("%w: crypto_id is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	userID := req.UserID
	if userID == "" {
		userID = common.DefaultUserID
	}

	investment := &entity.Investment{
		ID:            uuid.NewString(),
		UserID:        userID,
		CryptoID:      req.CryptoID,
		Amount:        req.Amount,
		PurchasePrice: req.Price,
		CurrentPrice:  req.Price,
		PurchaseDate:  utils.TimeNowUTC(),
		Status:        string(dto.InvestmentActive),
	}
	if err := s.investmentRepo.Create(ctx, investment); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record investment", logger.ErrorField(err))
		return nil, err
	}

	record := mapToInvestmentRecord(investment)
	s.logger.InfoContext(ctx, "Investment executed",
		logger.StringField("investment_id", investment.ID),
		logger.StringField("crypto_id", investment.CryptoID),
		logger.FloatField("amount", investment.Amount),
	)

	if s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatInvestmentForTelegram(&record)); err != nil {
			s.logger.ErrorContext(ctx, "Failed to send investment to telegram", logger.ErrorField(err))
		}
	}

	return &dto.ExecuteInvestmentResponse{
		Success:    true,
		Message:    fmt.Sprintf("Successfully invested in %s %s at $%s", formatNumber(req.Amount), req.CryptoID, formatNumber(req.Price)),
		Investment: &record,
	}, nil
}

// SubmitFeedback stores the feedback document and the reported outcome.
func (s *portfolioService) SubmitFeedback(ctx context.Context, investmentID string, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.UserRating != nil && (*req.UserRating < 1 || *req.UserRating > 5) {
		return nil, fmt.Errorf("%w: user_rating must be between 1 and 5", ErrInvalidInput)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	feedback := &entity.InvestmentFeedback{
		InvestmentID: investmentID,
		Performance:  req.Performance,
		Success:      req.Success,
		Rating:       req.UserRating,
		Payload:      datatypes.JSON(payload),
	}
	if err := s.investmentRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Investment feedback submitted", logger.StringField("investment_id", investmentID))
	return &dto.FeedbackResponse{Success: true}, nil
}

// Summary aggregates the user's history. Performance is weighted by current value.
func (s *portfolioService) Summary(ctx context.Context, userID string) (*dto.PortfolioSummary, error) {
	records, err := s.GetInvestmentHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(userID, records), nil
}

func summarize(userID string, records []dto.InvestmentRecord) *dto.PortfolioSummary {
	summary := &dto.PortfolioSummary{UserID: userID, Positions: len(records)}
	if len(records) == 0 {
		return summary
	}

	totalValue := decimal.Zero
	totalInvested := decimal.Zero
	weightedPerf := decimal.Zero
	best := -1

	for i, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		value := amount.Mul(decimal.NewFromFloat(r.CurrentPrice))
		totalValue = totalValue.Add(value)
		totalInvested = totalInvested.Add(amount.Mul(decimal.NewFromFloat(r.PurchasePrice)))
		weightedPerf = weightedPerf.Add(decimal.NewFromFloat(r.Performance).Mul(value))

		if best < 0 || r.Performance > records[best].Performance {
			best = i
		}
	}

	performance := decimal.Zero
	if !totalValue.IsZero() {
		performance = weightedPerf.Div(totalValue)
	}

	summary.TotalValue = totalValue.Round(2).InexactFloat64()
	summary.TotalInvested = totalInvested.Round(2).InexactFloat64()
	summary.ProfitLoss = totalValue.Sub(totalInvested).Round(2).InexactFloat64()
	summary.PerformancePercent = performance.Round(2).InexactFloat64()
	summary.BestAsset = records[best].CryptoID
	summary.BestPerformance = records[best].Performance
	return summary
}

func mapToInvestmentRecord(inv *entity.Investment) dto.InvestmentRecord {
	return dto.InvestmentRecord{
		ID:            inv.ID,
		UserID:        inv.UserID,
		CryptoID:      inv.CryptoID,
		Amount:        inv.Amount,
		PurchasePrice: inv.PurchasePrice,
		CurrentPrice:  inv.CurrentPrice,
		PurchaseDate:  inv.PurchaseDate,
		Status:        dto.InvestmentStatus(inv.Status),
		Performance:   inv.Performance,
		Success:       inv.Success,
	}
}

// formatNumber prints v with the shortest representation, e.g. 0.5 or 60000.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
