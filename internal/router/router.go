package router

import (
	"math"
	"strings"
)

// Route assesses a message in a fixed order: direct queries, tier patterns
// (complex, moderate, simple, else moderate), model lookup, cheap-path override
// and finally the token and cost estimate.
func (r *Router) Route(message string) Assessment {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, q := range directQueries {
		if strings.Contains(normalized, q) {
			return Assessment{
				NeedsExternalModel: false,
				Tier:               TierSimple,
				Rationale:          RationaleDirect,
			}
		}
	}

	tier := r.classify(normalized)
	model := r.models[tier]
	rationale := rationaleFor(tier)

	for _, kw := range cheapKeywords {
		if strings.Contains(normalized, kw) {
			model = r.cheap
			rationale += " (" + RationaleCheap + ")"
			break
		}
	}

	tokens := EstimateTokens(normalized)
	return Assessment{
		NeedsExternalModel: true,
		Tier:               tier,
		Model:              model,
		EstimatedTokens:    tokens,
		EstimatedCostUSD:   EstimateCost(tokens, model),
		Rationale:          rationale,
	}
}

func (r *Router) classify(msg string) Tier {
	for _, tr := range r.tiers {
		for _, p := range tr.patterns {
			if p.MatchString(msg) {
				return tr.tier
			}
		}
	}
	return TierModerate
}

// EstimateTokens approximates the prompt size of message including the system prompt.
func EstimateTokens(message string) int {
	words := len(strings.Fields(message))
	return int(math.Round(float64(words)*TokensPerWord)) + SystemPromptOverhead
}

// EstimateCost returns the USD cost of tokens on model, counting input and output.
// Unknown models use DefaultCostPer1KTokens.
func EstimateCost(tokens int, model string) float64 {
	per1K, ok := costPer1K[model]
	if !ok {
		per1K = DefaultCostPer1KTokens
	}
	return float64(tokens) * (per1K / 1000) * InputOutputFactor
}

func rationaleFor(t Tier) string {
	switch t {
	case TierSimple:
		return RationaleSimple
	case TierComplex:
		return RationaleComplex
	case TierCreative:
		return RationaleCreative
	default:
		return RationaleModerate
	}
}
