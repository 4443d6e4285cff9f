package repository

import (
	"context"
	"errors"
	"time"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/entity"
)

// ErrNotFound is returned when a requested record or cache entry does not exist.
var ErrNotFound = errors.New("not found")

// MarketDataRepository fetches live market data from an upstream provider.
type MarketDataRepository interface {
	FetchTopAssets(ctx context.Context) ([]dto.Asset, error)
}

// AIRepository generates free text from a prompt.
type AIRepository interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// MarketCacheRepository stores the latest market snapshot.
type MarketCacheRepository interface {
	GetSnapshot(ctx context.Context) (*dto.MarketSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot *dto.MarketSnapshot, ttl time.Duration) error
}

// ChatSessionRepository stores chat sessions and their transcripts.
type ChatSessionRepository interface {
	Create(ctx context.Context, session *dto.ChatSession) error
	Get(ctx context.Context, id string) (*dto.ChatSession, error)
	Append(ctx context.Context, id string, messages ...dto.ChatMessage) error
	Delete(ctx context.Context, id string) error
}

// UserProfileRepository defines the interface for user profile data operations.
type UserProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)
}

// InvestmentRepository defines the interface for investment data operations.
type InvestmentRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]entity.Investment, error)
	FindByID(ctx context.Context, id string) (*entity.Investment, error)
	Create(ctx context.Context, investment *entity.Investment) error
	CreateFeedback(ctx context.Context, feedback *entity.InvestmentFeedback) error
}

// NewsFeedRepository reads headlines from one RSS/Atom feed.
type NewsFeedRepository interface {
	FetchFeed(ctx context.Context, feedURL string, limit int) ([]dto.CryptoNews, error)
}
