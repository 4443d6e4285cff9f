package dto

import "time"

// Sentiment is the coarse market mood label.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is one of the recognized labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Asset is a market snapshot of one coin, shaped after the CoinGecko markets endpoint.
type Asset struct {
	ID                       string    `json:"id"`
	Symbol                   string    `json:"symbol"`
	Name                     string    `json:"name"`
	Image                    string    `json:"image,omitempty"`
	CurrentPrice             float64   `json:"current_price"`
	MarketCap                float64   `json:"market_cap"`
	MarketCapRank            int       `json:"market_cap_rank"`
	TotalVolume              float64   `json:"total_volume"`
	High24h                  float64   `json:"high_24h"`
	Low24h                   float64   `json:"low_24h"`
	PriceChange24h           float64   `json:"price_change_24h"`
	PriceChangePercentage24h float64   `json:"price_change_percentage_24h"`
	CirculatingSupply        float64   `json:"circulating_supply"`
	LastUpdated              time.Time `json:"last_updated"`
}

// SentimentSource is one contributor to a MarketSentiment.
type SentimentSource struct {
	Name      string    `json:"name"`
	Sentiment Sentiment `json:"sentiment"`
	Score     int       `json:"score"`
}

// MarketSentiment is a read-only snapshot of overall market mood.
type MarketSentiment struct {
	Overall Sentiment         `json:"overall"`
	Score   int               `json:"score"` // -100 to 100
	Sources []SentimentSource `json:"sources"`
}

// MarketSnapshot is what the cache holds: the asset list plus its provenance.
type MarketSnapshot struct {
	Assets    []Asset   `json:"assets"`
	Fallback  bool      `json:"fallback"`
	FetchedAt time.Time `json:"fetched_at"`
}

// AssetListResponse is returned by GET /market/assets.
type AssetListResponse struct {
	Assets    []Asset   `json:"assets"`
	Fallback  bool      `json:"fallback"`
	FetchedAt time.Time `json:"fetched_at"`
}
