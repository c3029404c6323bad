package intent

import (
	"regexp"

	"secure-intent-router/internal/operation"
)

// Match is the outcome of Classify. Matched is false when no rule fired, which is a
// routing signal for the complexity router rather than an error.
type Match struct {
	Operation operation.Name
	Pattern   string
	Matched   bool
}

type rule struct {
	name     operation.Name
	patterns []*regexp.Regexp
}
