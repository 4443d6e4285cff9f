package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const providerGemini = "gemini"

// ErrEmptyResponse is returned when Gemini answers without any candidate text.
var ErrEmptyResponse = errors.New("no content found in Gemini response")

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) AIRepository {
	perRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(perRequest), 1),
		genAiClient:    genAiClient,
	}
}

// GenerateText sends prompt as a single user turn and returns the first text
// part of the first candidate, unmodified.
func (r *geminiAIRepository) GenerateText(ctx context.Context, prompt string) (text string, err error) {
	ctx, span := tracing.StartSpan(ctx, "gemini.GenerateText", attribute.String("gemini.model", r.cfg.Gemini.Model))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.UpstreamCalls.WithLabelValues(providerGemini, metrics.Status(err)).Inc()
		metrics.UpstreamLatency.WithLabelValues(providerGemini).Observe(time.Since(start).Seconds())
		tracing.RecordError(span, err)
	}()

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, generationConfig())
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send request to Gemini API", logger.ErrorField(err))
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	r.logger.DebugContext(ctx, "Gemini response received", logger.IntField("candidates", len(resp.Candidates)))
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 1024,
	}
}

// ErrAIUnavailable is returned by the repository used when no Gemini client could be built.
var ErrAIUnavailable = errors.New("text generation is not configured")

type unavailableAIRepository struct{}

// NewUnavailableAIRepository returns an AIRepository that always fails with
// ErrAIUnavailable, so every caller takes its fallback path.
func NewUnavailableAIRepository() AIRepository {
	return unavailableAIRepository{}
}

func (unavailableAIRepository) GenerateText(context.Context, string) (string, error) {
	return "", ErrAIUnavailable
}
