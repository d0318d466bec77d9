package domain

import "strings"

// Verdict is the pass/fail result derived from a validator Response.
type Verdict struct {
	Valid    bool
	Messages []string
}

// Failure formats the diagnostic message reported to a test when the verdict is invalid.
func (v Verdict) Failure(kind Kind) string {
	message := strings.Join(v.Messages, "\n")
	if kind == KindCSS {
		return "CSS Validation failed:\n" + message
	}
	return message
}
