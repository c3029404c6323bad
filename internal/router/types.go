package router

import "regexp"

// Tier is a coarse cost/quality bucket used to pick a model.
type Tier string

const (
	TierSimple   Tier = "simple"
	TierModerate Tier = "moderate"
	TierComplex  Tier = "complex"
	TierCreative Tier = "creative"
)

// Assessment is the routing decision for a message no operation rule matched.
type Assessment struct {
	NeedsExternalModel bool    `json:"needs_external_model"`
	Tier               Tier    `json:"complexity_tier"`
	Model              string  `json:"chosen_model,omitempty"`
	EstimatedTokens    int     `json:"estimated_tokens"`
	EstimatedCostUSD   float64 `json:"estimated_cost_usd"`
	Rationale          string  `json:"rationale"`
}

// Config overrides the default model of a tier. Empty fields keep the defaults.
type Config struct {
	SimpleModel   string
	ModerateModel string
	ComplexModel  string
	CreativeModel string
	CheapModel    string
}

type tierRule struct {
	tier     Tier
	patterns []*regexp.Regexp
}
