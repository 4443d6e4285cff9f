package telegram

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"crypto-advisor/internal/advisor/dto"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecommendationForTelegram(t *testing.T) {
	rec := &dto.PortfolioRecommendation{
		RiskProfile: dto.RiskMedium,
		Timeframe:   dto.TimeframeHodl,
		Allocations: []dto.AllocationEntry{
			{CoinID: "bitcoin", Percentage: 60, Reasoning: "Bitcoin reasoning"},
			{CoinID: "ethereum", Percentage: 40, Reasoning: "Ethereum reasoning"},
		},
	}
	msg := FormatRecommendationForTelegram(rec, dto.MarketSentiment{Overall: dto.SentimentNegative, Score: -50})

	assert.Contains(t, msg, "*Risk Profile:* medium")
	assert.Contains(t, msg, "HODL (very long-term)")
	assert.Contains(t, msg, "😟 *Market Sentiment:* negative (-50)")
	assert.Contains(t, msg, "• `bitcoin` 60%")
	assert.Contains(t, msg, "• `ethereum` 40%")
	assert.Contains(t, msg, "_Bitcoin reasoning_")
}

func TestFormatInvestmentForTelegram(t *testing.T) {
	msg := FormatInvestmentForTelegram(&dto.InvestmentRecord{
		UserID:        "user-123",
		CryptoID:      "solana",
		Amount:        2.5,
		PurchasePrice: 142.78,
		PurchaseDate:  time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, msg, "`solana`")
	assert.Contains(t, msg, "*Amount:* 2.5")
	assert.Contains(t, msg, "$142.78")
	assert.Contains(t, msg, "01 Mar 2024 09:30 UTC")
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 10))

	parts := splitMessage("aaaa\nbbbb\ncccc\n", 10)
	assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc\n"}, parts)

	long := strings.Repeat("x", 25)
	parts = splitMessage(long, 10)
	assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, parts)
	assert.Equal(t, long, strings.Join(parts, ""))
}

func TestSplitMessage_KeepsRunesWhole(t *testing.T) {
	text := "ab" + strings.Repeat("€", 2000)

	parts := splitMessage(text, maxMessageLen)

	assert.Len(t, parts, 2)
	for i, part := range parts {
		assert.True(t, utf8.ValidString(part), "part %d is not valid UTF-8", i)
		assert.LessOrEqual(t, len(part), maxMessageLen)
	}
	assert.Equal(t, text, strings.Join(parts, ""))

	// limit smaller than one rune still makes progress
	assert.Equal(t, []string{"€", "€"}, splitMessage("€€", 2))
}
