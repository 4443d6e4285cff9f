package service

import (
	"context"

	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
)

// RelayFallbackText is returned to the user whenever the text generator cannot answer.
const RelayFallbackText = "I'm sorry, I'm having trouble connecting to my knowledge base right now. Please try again in a moment."

// Relay forwards a user query to the text generator wrapped in the advisor persona.
type Relay interface {
	// Ask returns the generated reply, or RelayFallbackText with ok=false on any failure.
	Ask(ctx context.Context, query string) (reply string, ok bool)
}

// NewRelay creates a new Relay.
func NewRelay(aiRepo repository.AIRepository, log *logger.Logger) Relay {
	return &relay{aiRepo: aiRepo, logger: log}
}

type relay struct {
	aiRepo repository.AIRepository
	logger *logger.Logger
}

func (r *relay) Ask(ctx context.Context, query string) (string, bool) {
	text, err := r.aiRepo.GenerateText(ctx, repository.BuildAdvisorPrompt(query))
	if err != nil {
		r.logger.WarnContext(ctx, "Relay falling back to apology text", logger.ErrorField(err))
		metrics.Fallbacks.WithLabelValues("chat_relay").Inc()
		return RelayFallbackText, false
	}
	return text, true
}
