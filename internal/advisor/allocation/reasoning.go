package allocation

import (
	"fmt"

	"crypto-advisor/internal/advisor/dto"
)

// Templates take the timeframe label first and the sentiment label second.
var reasoningTemplates = map[category]map[dto.RiskProfile]string{
	categoryBitcoin: {
		dto.RiskLow:    "Bitcoin provides stability for %s investors. With %s market sentiment, it serves as a strong hedge against volatility.",
		dto.RiskMedium: "Bitcoin offers a balance of growth and stability for %s investors in the current %s market.",
		dto.RiskHigh:   "Bitcoin provides foundation for a high-risk portfolio with %s outlook in the current %s market.",
	},
	categoryEthereum: {
		dto.RiskLow:    "Ethereum offers established smart contract capabilities with lower volatility than smaller altcoins. Good for %s investors in %s markets.",
		dto.RiskMedium: "Ethereum balances innovation and established market position for %s investors in %s conditions.",
		dto.RiskHigh:   "Ethereum's ongoing development provides growth potential for %s high-risk investors in %s markets.",
	},
	categorySolana: {
		dto.RiskLow:    "Limited allocation to Solana provides some exposure to high-performance blockchains while maintaining %s safety in %s markets.",
		dto.RiskMedium: "Solana offers higher growth potential for %s investors willing to accept moderate risk in %s market conditions.",
		dto.RiskHigh:   "Solana's high performance and ecosystem growth make it attractive for %s high-risk investors in %s markets.",
	},
}

const defaultReasoningTemplate = "This allocation is optimized for a %s-risk %s strategy in %s market conditions."

func reasoning(c category, risk dto.RiskProfile, timeframe dto.Timeframe, overall dto.Sentiment) string {
	if tmpl, ok := reasoningTemplates[c][risk]; ok {
		return fmt.Sprintf(tmpl, timeframe.Label(), overall)
	}
	return fmt.Sprintf(defaultReasoningTemplate, risk, timeframe.Label(), overall)
}
