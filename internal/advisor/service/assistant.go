package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/intent"
	"crypto-advisor/pkg/logger"

	"github.com/dustin/go-humanize"
)

const (
	// AssistantErrorText replaces any reply whose data could not be gathered.
	AssistantErrorText = "I'm sorry, I encountered an error while processing your request. Please try again."

	howItWorksText = "I analyze your investment history, risk profile, and current market conditions. I learn from successful and unsuccessful investments to improve my recommendations over time. Your feedback on investment performance helps train the model to better understand your preferences and market patterns."
	generalText    = "I'm here to help with your investment questions. You can ask about your portfolio, market conditions, or request personalized recommendations. If you'd like to know how I work, just ask!"

	marketPreviewSize = 3
)

// AssistantAnswer is the reply text plus optional structured data for the view layer.
type AssistantAnswer struct {
	Text string
	Data map[string]interface{}
}

// Assistant answers a classified message from the user's own data.
type Assistant interface {
	Answer(ctx context.Context, userID string, kind intent.Intent) AssistantAnswer
}

// NewAssistant creates a new Assistant.
func NewAssistant(
	marketSvc MarketService,
	sentimentSvc SentimentService,
	recommendationSvc RecommendationService,
	portfolioSvc PortfolioService,
	log *logger.Logger,
) Assistant {
	return &assistant{
		marketSvc:         marketSvc,
		sentimentSvc:      sentimentSvc,
		recommendationSvc: recommendationSvc,
		portfolioSvc:      portfolioSvc,
		logger:            log,
	}
}

type assistant struct {
	marketSvc         MarketService
	sentimentSvc      SentimentService
	recommendationSvc RecommendationService
	portfolioSvc      PortfolioService
	logger            *logger.Logger
}

func (a *assistant) Answer(ctx context.Context, userID string, kind intent.Intent) AssistantAnswer {
	var (
		answer AssistantAnswer
		err    error
	)
	switch kind {
	case intent.Portfolio:
		answer, err = a.portfolio(ctx, userID)
	case intent.Market:
		answer, err = a.market(ctx)
	case intent.Recommendation:
		answer, err = a.recommendation(ctx, userID)
	case intent.Risk:
		answer, err = a.risk(ctx, userID)
	case intent.HowItWorks:
		answer = AssistantAnswer{Text: howItWorksText}
	default:
		answer = AssistantAnswer{Text: generalText}
	}

	if err != nil {
		a.logger.ErrorContext(ctx, "Assistant failed to answer",
			logger.ErrorField(err),
			logger.StringField("intent", string(kind)),
			logger.StringField("user_id", userID),
		)
		return AssistantAnswer{Text: AssistantErrorText}
	}
	return answer
}

func (a *assistant) portfolio(ctx context.Context, userID string) (AssistantAnswer, error) {
	history, err := a.portfolioSvc.GetInvestmentHistory(ctx, userID)
	if err != nil {
		return AssistantAnswer{}, err
	}
	summary := summarize(userID, history)

	var text string
	if summary.Positions == 0 {
		text = "You don't have any investments yet. Ask me for a recommendation to get started."
	} else {
		text = fmt.Sprintf("Your portfolio is currently valued at $%s. Overall performance is %.2f%%. Your best performing asset is %s (%+.2f%%).",
			formatUSD(summary.TotalValue),
			summary.PerformancePercent,
			displayName(summary.BestAsset),
			summary.BestPerformance,
		)
	}

	assets := make([]map[string]interface{}, 0, len(history))
	for _, inv := range history {
		assets = append(assets, map[string]interface{}{
			"name":        inv.CryptoID,
			"performance": inv.Performance,
			"value":       inv.Amount * inv.CurrentPrice,
		})
	}

	return AssistantAnswer{
		Text: text,
		Data: map[string]interface{}{
			"type":        string(intent.Portfolio),
			"totalValue":  summary.TotalValue,
			"performance": summary.PerformancePercent,
			"assets":      assets,
		},
	}, nil
}

func (a *assistant) market(ctx context.Context) (AssistantAnswer, error) {
	snapshot := a.marketSvc.GetTopAssets(ctx)
	if len(snapshot.Assets) == 0 {
		return AssistantAnswer{}, errors.New("no market data")
	}

	mood, err := a.sentimentSvc.Current(ctx, "")
	if err != nil {
		return AssistantAnswer{}, err
	}

	parts := make([]string, 0, 2)
	for _, id := range []string{"bitcoin", "ethereum"} {
		if asset, ok := findAsset(snapshot.Assets, id); ok {
			parts = append(parts, fmt.Sprintf("%s is at $%s", asset.Name, formatUSD(asset.CurrentPrice)))
		}
	}
	if len(parts) == 0 {
		first := snapshot.Assets[0]
		parts = append(parts, fmt.Sprintf("%s is at $%s", first.Name, formatUSD(first.CurrentPrice)))
	}

	preview := snapshot.Assets
	if len(preview) > marketPreviewSize {
		preview = preview[:marketPreviewSize]
	}

	return AssistantAnswer{
		Text: fmt.Sprintf("Here's the current market overview: %s. The overall market sentiment is %s.", strings.Join(parts, ", "), mood.Overall),
		Data: map[string]interface{}{
			"type":     string(intent.Market),
			"cryptos":  preview,
			"fallback": snapshot.Fallback,
		},
	}, nil
}

func (a *assistant) recommendation(ctx context.Context, userID string) (AssistantAnswer, error) {
	profile, err := a.portfolioSvc.GetUserProfile(ctx, userID)
	if err != nil {
		return AssistantAnswer{}, err
	}

	resp, err := a.recommendationSvc.Recommend(ctx, &dto.RecommendationRequest{
		RiskProfile: profile.RiskProfile,
		Timeframe:   profile.Timeframe,
	})
	if err != nil {
		return AssistantAnswer{}, err
	}

	parts := make([]string, 0, len(resp.Recommendation.Allocations))
	for _, alloc := range resp.Recommendation.Allocations {
		parts = append(parts, fmt.Sprintf("%d%% to %s", alloc.Percentage, displayName(alloc.CoinID)))
	}

	return AssistantAnswer{
		Text: fmt.Sprintf("Based on your %s risk profile and %s investment timeframe, I recommend allocating %s. This balances potential growth with stability. Would you like more specific details?",
			profile.RiskProfile, profile.Timeframe, joinList(parts)),
		Data: map[string]interface{}{
			"type":           string(intent.Recommendation),
			"profile":        profile,
			"recommendation": resp.Recommendation,
		},
	}, nil
}

func (a *assistant) risk(ctx context.Context, userID string) (AssistantAnswer, error) {
	profile, err := a.portfolioSvc.GetUserProfile(ctx, userID)
	if err != nil {
		return AssistantAnswer{}, err
	}

	var comfort string
	switch profile.RiskProfile {
	case dto.RiskHigh:
		comfort = "significant market volatility for potentially higher returns"
	case dto.RiskMedium:
		comfort = "moderate market fluctuations for balanced growth"
	default:
		comfort = "minimal volatility with steady but conservative returns"
	}

	return AssistantAnswer{
		Text: fmt.Sprintf("Based on your investment history and preferences, your risk profile is %s. This means you're comfortable with %s.",
			strings.ToUpper(string(profile.RiskProfile)), comfort),
		Data: map[string]interface{}{
			"type":    string(intent.Risk),
			"profile": profile,
		},
	}, nil
}

func findAsset(assets []dto.Asset, id string) (dto.Asset, bool) {
	for _, a := range assets {
		if a.ID == id {
			return a, true
		}
	}
	return dto.Asset{}, false
}

func formatUSD(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// displayName turns an asset id such as "bitcoin" into "Bitcoin".
func displayName(id string) string {
	if id == "" {
		return id
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// joinList renders "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
