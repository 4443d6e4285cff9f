package telegram

import (
	"fmt"
	"strings"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/utils"
)

func sentimentIcon(s dto.Sentiment) string {
	switch s {
	case dto.SentimentPositive:
		return "😊"
	case dto.SentimentNegative:
		return "😟"
	default:
		return "😐"
	}
}

// FormatRecommendationForTelegram formats a portfolio recommendation into a Markdown string for Telegram.
func FormatRecommendationForTelegram(rec *dto.PortfolioRecommendation, sentiment dto.MarketSentiment) string {
	var builder strings.Builder

	builder.WriteString("📊 *Portfolio Recommendation*\n\n")
	builder.WriteString(fmt.Sprintf("🛡 *Risk Profile:* %s\n", rec.RiskProfile))
	builder.WriteString(fmt.Sprintf("⏳ *Timeframe:* %s\n", rec.Timeframe.Label()))
	builder.WriteString(fmt.Sprintf("%s *Market Sentiment:* %s (%d)\n\n", sentimentIcon(sentiment.Overall), sentiment.Overall, sentiment.Score))

	builder.WriteString("💼 *Allocation:*\n")
	for _, alloc := range rec.Allocations {
		builder.WriteString(fmt.Sprintf("• `%s` %d%%\n", alloc.CoinID, alloc.Percentage))
	}
	builder.WriteString("\n")

	if len(rec.Allocations) > 0 {
		builder.WriteString(fmt.Sprintf("🤔 _%s_\n", rec.Allocations[0].Reasoning))
	}
	return builder.String()
}

// FormatInvestmentForTelegram formats an executed investment into a Markdown string for Telegram.
func FormatInvestmentForTelegram(inv *dto.InvestmentRecord) string {
	var builder strings.Builder

	builder.WriteString("✅ *Investment Executed*\n\n")
	builder.WriteString(fmt.Sprintf("🪙 *Asset:* `%s`\n", inv.CryptoID))
	builder.WriteString(fmt.Sprintf("📦 *Amount:* %g\n", inv.Amount))
	builder.WriteString(fmt.Sprintf("💵 *Price:* $%.2f\n", inv.PurchasePrice))
	builder.WriteString(fmt.Sprintf("👤 *User:* %s\n", inv.UserID))
	builder.WriteString(fmt.Sprintf("🗓 *Date:* %s\n", utils.PrettyDate(inv.PurchaseDate)))
	return builder.String()
}
