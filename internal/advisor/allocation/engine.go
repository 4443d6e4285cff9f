// Package allocation turns a risk profile, a horizon, a sentiment snapshot and
// a list of candidate assets into a percentage allocation with reasoning.
//
// The computation is pure: no I/O, no clock, no randomness. Only the asset id
// is read from each Asset.
package allocation

import (
	"errors"
	"fmt"
	"sort"

	"crypto-advisor/internal/advisor/dto"
)

// MaxAssets is the number of leading assets the engine considers.
const MaxAssets = 5

// ErrInvalidInput is returned for empty asset lists and unrecognized enumerations.
var ErrInvalidInput = errors.New("invalid input")

type category string

const (
	categoryBitcoin  category = "bitcoin"
	categoryEthereum category = "ethereum"
	categorySolana   category = "solana"
	categoryDefault  category = "default"
)

func categoryOf(assetID string) category {
	switch assetID {
	case "bitcoin":
		return categoryBitcoin
	case "ethereum":
		return categoryEthereum
	case "solana":
		return categorySolana
	default:
		return categoryDefault
	}
}

// baseWeights are starting weights, not normalized. A category missing from a
// profile's row falls back to that row's default weight.
var baseWeights = map[dto.RiskProfile]map[category]int{
	dto.RiskLow: {
		categoryBitcoin:  50,
		categoryEthereum: 40,
		categoryDefault:  5,
	},
	dto.RiskMedium: {
		categoryBitcoin:  35,
		categoryEthereum: 30,
		categorySolana:   15,
		categoryDefault:  10,
	},
	dto.RiskHigh: {
		categoryBitcoin:  25,
		categoryEthereum: 20,
		categorySolana:   30,
		categoryDefault:  15,
	},
}

func baseWeight(risk dto.RiskProfile, c category) int {
	row := baseWeights[risk]
	if w, ok := row[c]; ok {
		return w
	}
	return row[categoryDefault]
}

// Recommend builds a PortfolioRecommendation. Percentages are integers summing to exactly 100.
func Recommend(risk dto.RiskProfile, timeframe dto.Timeframe, sentiment dto.MarketSentiment, assets []dto.Asset) (*dto.PortfolioRecommendation, error) {
	if err := validate(risk, timeframe, sentiment, assets); err != nil {
		return nil, err
	}

	candidates := assets
	if len(candidates) > MaxAssets {
		candidates = candidates[:MaxAssets]
	}

	cats := make([]category, len(candidates))
	weights := make([]int, len(candidates))
	for i, asset := range candidates {
		cats[i] = categoryOf(asset.ID)
		weights[i] = adjust(baseWeight(risk, cats[i]), cats[i], sentiment.Overall)
	}

	percentages := normalize(weights)

	allocations := make([]dto.AllocationEntry, len(candidates))
	for i, asset := range candidates {
		allocations[i] = dto.AllocationEntry{
			CoinID:     asset.ID,
			Percentage: percentages[i],
			Reasoning:  reasoning(cats[i], risk, timeframe, sentiment.Overall),
		}
	}

	return &dto.PortfolioRecommendation{
		RiskProfile: risk,
		Timeframe:   timeframe,
		Allocations: allocations,
	}, nil
}

func validate(risk dto.RiskProfile, timeframe dto.Timeframe, sentiment dto.MarketSentiment, assets []dto.Asset) error {
	if len(assets) == 0 {
		return fmt.Errorf("%w: assets must not be empty", ErrInvalidInput)
	}
	if !risk.Valid() {
		return fmt.Errorf("%w: unknown risk profile %q", ErrInvalidInput, risk)
	}
	if !timeframe.Valid() {
		return fmt.Errorf("%w: unknown timeframe %q", ErrInvalidInput, timeframe)
	}
	if !sentiment.Overall.Valid() {
		return fmt.Errorf("%w: unknown sentiment %q", ErrInvalidInput, sentiment.Overall)
	}
	return nil
}

// adjust applies the sentiment tilt to one weight, clamped to [0, 100].
func adjust(weight int, c category, overall dto.Sentiment) int {
	switch overall {
	case dto.SentimentPositive:
		switch c {
		case categoryBitcoin:
			return max(weight-5, 0)
		case categorySolana:
			return min(weight+5, 100)
		}
	case dto.SentimentNegative:
		if c == categoryBitcoin {
			return min(weight+10, 100)
		}
		return max(weight-5, 0)
	}
	return weight
}

// normalize scales weights to integer percentages summing to 100 using the
// largest-remainder method: every entry gets the floor of its exact share, and
// the points still missing go one each to the largest fractional parts. Ties
// go to the larger weight, then to the earlier position. When all weights are
// zero the entries are treated as equal.
func normalize(weights []int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}

	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		weights = make([]int, n)
		for i := range weights {
			weights[i] = 1
		}
		total = n
	}

	// Exact share of entry i is weights[i]*100/total; keep it as quotient and
	// remainder so the comparison below stays in integers.
	out := make([]int, n)
	remainders := make([]int, n)
	assigned := 0
	for i, w := range weights {
		out[i] = w * 100 / total
		remainders[i] = w * 100 % total
		assigned += out[i]
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if remainders[ia] != remainders[ib] {
			return remainders[ia] > remainders[ib]
		}
		return weights[ia] > weights[ib]
	})

	for k := 0; k < 100-assigned; k++ {
		out[order[k]]++
	}
	return out
}
