// Package sentiment flags frustration signals in user messages so the
// dialogue engine can escalate before running intent classification.
package sentiment

import "strings"

// Severity grades how negative a message reads.
type Severity int

const (
	Neutral Severity = iota
	PotentiallyNegative
	Negative
)

func (s Severity) String() string {
	switch s {
	case Negative:
		return "negative"
	case PotentiallyNegative:
		return "potentially_negative"
	default:
		return "neutral"
	}
}

var negativeTerms = []string{
	"angry", "frustrated", "useless", "stupid", "waste",
	"terrible", "awful", "horrible", "worst", "mad", "ridiculous",
}

// Detect scans text for negative-affect vocabulary. Two or more distinct
// terms present (substring containment, so "madness" counts for "mad") means
// Negative; otherwise an exclamation mark alone means PotentiallyNegative.
// A term repeated several times still counts once.
func Detect(text string) Severity {
	lower := strings.ToLower(text)

	found := 0
	for _, term := range negativeTerms {
		if strings.Contains(lower, term) {
			found++
		}
	}

	if found >= 2 {
		return Negative
	}
	if strings.Contains(text, "!") {
		return PotentiallyNegative
	}
	return Neutral
}
