package dto

// RiskProfile is the user-declared tolerance for volatility.
type RiskProfile string

const (
	RiskLow    RiskProfile = "low"
	RiskMedium RiskProfile = "medium"
	RiskHigh   RiskProfile = "high"
)

func (r RiskProfile) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Timeframe is the user-declared holding horizon.
type Timeframe string

const (
	TimeframeShort  Timeframe = "short"
	TimeframeMedium Timeframe = "medium"
	TimeframeLong   Timeframe = "long"
	TimeframeHodl   Timeframe = "hodl"
)

func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeShort, TimeframeMedium, TimeframeLong, TimeframeHodl:
		return true
	}
	return false
}

// Label is the human-readable horizon used in reasoning text.
func (t Timeframe) Label() string {
	switch t {
	case TimeframeShort:
		return "short-term"
	case TimeframeMedium:
		return "medium-term"
	case TimeframeLong:
		return "long-term"
	default:
		return "HODL (very long-term)"
	}
}

// AllocationEntry is the share of the portfolio assigned to one asset.
type AllocationEntry struct {
	CoinID     string `json:"coin_id"`
	Percentage int    `json:"percentage"`
	Reasoning  string `json:"reasoning"`
}

// PortfolioRecommendation is the engine output. Percentages sum to 100.
type PortfolioRecommendation struct {
	RiskProfile RiskProfile       `json:"risk_profile"`
	Timeframe   Timeframe         `json:"timeframe"`
	Allocations []AllocationEntry `json:"allocations"`
}

// RecommendationRequest is the body of POST /recommendations.
type RecommendationRequest struct {
	RiskProfile RiskProfile `json:"risk_profile"`
	Timeframe   Timeframe   `json:"timeframe"`
	// Optional asset ids; the top market assets are used when empty.
	AssetIDs []string `json:"asset_ids,omitempty"`
	// Optional sentiment override; the configured sentiment source is used when nil.
	Sentiment *MarketSentiment `json:"sentiment,omitempty"`
	// SentimentSource selects "mock" or "ai" when Sentiment is nil.
	SentimentSource string `json:"sentiment_source,omitempty"`
	Notify          bool   `json:"notify,omitempty"`
}

// RecommendationResponse wraps the recommendation with the inputs it was built from.
type RecommendationResponse struct {
	Recommendation PortfolioRecommendation `json:"recommendation"`
	Sentiment      MarketSentiment         `json:"sentiment"`
	AssetsFallback bool                    `json:"assets_fallback"`
}
