package repository

import "fmt"

const (
	// SentimentPrompt asks for an overall market mood the sentiment scanner can classify.
	SentimentPrompt = "Analyze the current crypto market sentiment. Is it overall positive, neutral, or negative? Provide a short analysis with a sentiment score from -100 to 100."

	// NewsPrompt asks for the most important recent headlines.
	NewsPrompt = "What are the 3 most important recent crypto news stories? For each, provide a title, source, and whether the sentiment is positive, neutral, or negative."
)

// BuildAdvisorPrompt wraps a raw user query in the advisor persona instructions.
func BuildAdvisorPrompt(query string) string {
	return fmt.Sprintf(`You are an AI Crypto Investment Advisor helping users make informed decisions.
Answer the following query about cryptocurrency investing in a helpful, informative way.
Keep responses concise (under 150 words) and focus on balanced investment advice.

User query: %s`, query)
}
