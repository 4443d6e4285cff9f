// Package intent maps a free-text chat message to the assistant feature that should answer it.
package intent

import "strings"

// Intent is the assistant feature selected for a message.
type Intent string

const (
	Portfolio      Intent = "portfolio"
	Market         Intent = "market"
	Recommendation Intent = "recommendation"
	Risk           Intent = "risk"
	HowItWorks     Intent = "how_it_works"
	General        Intent = "general"
)

type rule struct {
	intent Intent
	match  func(text string) bool
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{Portfolio, func(s string) bool { return containsAny(s, "portfolio", "investments") }},
	{Market, func(s string) bool { return containsAny(s, "market", "prices") }},
	{Recommendation, func(s string) bool { return containsAny(s, "recommend", "suggest", "advice") }},
	{Risk, func(s string) bool {
		return strings.Contains(s, "risk") && containsAny(s, "assessment", "profile")
	}},
	{HowItWorks, func(s string) bool {
		return strings.Contains(s, "how") && containsAny(s, "work", "learn")
	}},
}

// Classify returns the first matching intent for text, or General.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.match(lower) {
			return r.intent
		}
	}
	return General
}
