// Package sentiment classifies free text into a coarse market mood.
package sentiment

import (
	"strings"

	"crypto-advisor/internal/advisor/dto"
)

const (
	positiveScore = 50
	negativeScore = -50

	// AISourceName names the single source of an AI-derived snapshot.
	AISourceName = "Gemini AI Analysis"
)

// Classify scans text case-insensitively for "positive" and "negative".
// When both occur, the one appearing first wins.
func Classify(text string) (dto.Sentiment, int) {
	lower := strings.ToLower(text)
	pos := strings.Index(lower, string(dto.SentimentPositive))
	neg := strings.Index(lower, string(dto.SentimentNegative))

	switch {
	case pos >= 0 && (neg < 0 || pos < neg):
		return dto.SentimentPositive, positiveScore
	case neg >= 0:
		return dto.SentimentNegative, negativeScore
	default:
		return dto.SentimentNeutral, 0
	}
}

// FromText builds a MarketSentiment snapshot with one source out of AI text.
func FromText(text string) dto.MarketSentiment {
	overall, score := Classify(text)
	return dto.MarketSentiment{
		Overall: overall,
		Score:   score,
		Sources: []dto.SentimentSource{
			{Name: AISourceName, Sentiment: overall, Score: score},
		},
	}
}

// Mock is the fixed snapshot served when live analysis is not requested.
func Mock() dto.MarketSentiment {
	return dto.MarketSentiment{
		Overall: dto.SentimentPositive,
		Score:   65,
		Sources: []dto.SentimentSource{
			{Name: "Twitter", Sentiment: dto.SentimentPositive, Score: 72},
			{Name: "Reddit", Sentiment: dto.SentimentPositive, Score: 68},
			{Name: "News Articles", Sentiment: dto.SentimentNeutral, Score: 55},
		},
	}
}
