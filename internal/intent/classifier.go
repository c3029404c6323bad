package intent

import (
	"regexp"
	"strings"

	"secure-intent-router/internal/operation"
)

// Classifier maps free text to a whitelisted operation. It is immutable after New and
// safe for concurrent use.
type Classifier struct {
	rules []rule
}

// New compiles the rule table. It panics on a malformed pattern since the table is static.
func New() *Classifier {
	rules := make([]rule, 0, len(ruleSet))
	for _, rs := range ruleSet {
		r := rule{name: rs.name}
		for _, p := range rs.patterns {
			r.patterns = append(r.patterns, regexp.MustCompile(`(?i)`+p))
		}
		rules = append(rules, r)
	}
	return &Classifier{rules: rules}
}

// Classify returns the first operation, in registration order, with any matching pattern.
func (c *Classifier) Classify(message string) Match {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return Match{}
	}

	for _, r := range c.rules {
		for _, p := range r.patterns {
			if p.MatchString(msg) {
				return Match{Operation: r.name, Pattern: p.String(), Matched: true}
			}
		}
	}
	return Match{}
}

// Operations returns the classifiable names in registration order.
func (c *Classifier) Operations() []operation.Name {
	out := make([]operation.Name, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.name
	}
	return out
}
