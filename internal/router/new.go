package router

import (
	"regexp"
)

// Router scores message complexity and picks a model. It holds only read-only tables
// built in New and is safe for concurrent use.
type Router struct {
	tiers  []tierRule
	models map[Tier]string
	cheap  string
}

// New creates a Router with the default tier table, applying cfg overrides.
func New(cfg Config) *Router {
	models := map[Tier]string{
		TierSimple:   ModelGeminiFlash,
		TierModerate: ModelClaudeHaiku,
		TierComplex:  ModelClaudeSonnet,
		TierCreative: ModelGPT4Turbo,
	}
	override := func(t Tier, m string) {
		if m != "" {
			models[t] = m
		}
	}
	override(TierSimple, cfg.SimpleModel)
	override(TierModerate, cfg.ModerateModel)
	override(TierComplex, cfg.ComplexModel)
	override(TierCreative, cfg.CreativeModel)

	cheap := ModelGeminiFlash
	if cfg.CheapModel != "" {
		cheap = cfg.CheapModel
	}

	return &Router{
		tiers: []tierRule{
			{tier: TierComplex, patterns: compile(complexPatterns)},
			{tier: TierModerate, patterns: compile(moderatePatterns)},
			{tier: TierSimple, patterns: compile(simplePatterns)},
		},
		models: models,
		cheap:  cheap,
	}
}

func compile(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// ModelFor returns the model assigned to tier.
func (r *Router) ModelFor(tier Tier) string {
	return r.models[tier]
}
