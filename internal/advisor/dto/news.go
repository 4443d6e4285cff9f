package dto

import "time"

// CryptoNews is one headline with its derived sentiment.
type CryptoNews struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Sentiment   Sentiment `json:"sentiment"`
	Summary     string    `json:"summary"`
}

// NewsResponse is returned by GET /news.
type NewsResponse struct {
	Items    []CryptoNews `json:"items"`
	Fallback bool         `json:"fallback"`
}
