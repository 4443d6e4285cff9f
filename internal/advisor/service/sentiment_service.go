package service

import (
	"context"
	"fmt"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/internal/advisor/sentiment"
	"crypto-advisor/pkg/logger"
)

const (
	SentimentSourceMock = "mock"
	SentimentSourceAI   = "ai"
)

// SentimentService provides market sentiment snapshots.
type SentimentService interface {
	MockSnapshot() dto.MarketSentiment
	Analyze(ctx context.Context) dto.MarketSentiment
	Current(ctx context.Context, source string) (dto.MarketSentiment, error)
}

// NewSentimentService creates a new sentiment service.
func NewSentimentService(relay Relay, cfg *config.Config, log *logger.Logger) SentimentService {
	return &sentimentService{relay: relay, cfg: cfg, logger: log}
}

type sentimentService struct {
	relay  Relay
	cfg    *config.Config
	logger *logger.Logger
}

func (s *sentimentService) MockSnapshot() dto.MarketSentiment {
	return sentiment.Mock()
}

// Analyze asks the text generator for a market read and classifies the reply.
// A failed call yields the apology text, which classifies as neutral.
func (s *sentimentService) Analyze(ctx context.Context) dto.MarketSentiment {
	reply, _ := s.relay.Ask(ctx, repository.SentimentPrompt)
	result := sentiment.FromText(reply)
	s.logger.DebugContext(ctx, "Market sentiment analyzed", logger.StringField("overall", string(result.Overall)))
	return result
}

// Current returns the snapshot for source; an empty source uses the configured default.
func (s *sentimentService) Current(ctx context.Context, source string) (dto.MarketSentiment, error) {
	if source == "" {
		source = s.cfg.Sentiment.Source
	}
	switch source {
	case SentimentSourceMock:
		return s.MockSnapshot(), nil
	case SentimentSourceAI:
		return s.Analyze(ctx), nil
	default:
		return dto.MarketSentiment{}, fmt.Errorf("%w: unknown sentiment source %q", ErrInvalidInput, source)
	}
}
