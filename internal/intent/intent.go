package intent

import (
	"regexp"
	"strings"
)

// Intent labels the purpose of a user utterance.
type Intent string

const (
	Greeting    Intent = "greeting"
	Goodbye     Intent = "goodbye"
	Hours       Intent = "hours"
	Returns     Intent = "returns"
	Shipping    Intent = "shipping"
	Payment     Intent = "payment"
	Contact     Intent = "contact"
	ProductInfo Intent = "product_info"
	Discount    Intent = "discount"
	Account     Intent = "account"
	Complaint   Intent = "complaint"

	// Fallback is returned when no rule matches. It is a real intent (it has
	// its own response set) but never becomes the conversation context.
	Fallback Intent = "fallback"

	// None marks the absence of a conversation context.
	None Intent = ""
)

type rule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// Rules are evaluated top to bottom; the first match wins, so earlier intents
// take priority when an utterance contains triggers for more than one.
var rules = []rule{
	{Greeting, Words(`hello|hi|hey|greetings|howdy|good morning|good afternoon|good evening|hi there`)},
	{Goodbye, Words(`bye|goodbye|see you|farewell|end|quit|exit`)},
	{Hours, Words(`hours|time|schedule|open|closed|operation|business hours`)},
	{Returns, Words(`return|refund|exchange|send back|policy`)},
	{Shipping, Words(`shipping|delivery|ship|deliver|arrival|tracking`)},
	{Payment, Words(`payment|pay|credit|debit|card|paypal|apple pay|method`)},
	{Contact, Words(`contact|email|phone|call|reach|support`)},
	{ProductInfo, Words(`product|item|details|specifications|specs|info|information|features`)},
	{Discount, Words(`discount|offer|promo|promotion|coupon|code|sale|deal`)},
	{Account, Words(`account|profile|login|sign in|password|username|register`)},
	{Complaint, Words(`complaint|problem|issue|wrong|broken|damaged|dissatisfied|not working|unhappy`)},
}

// Words compiles a case-insensitive pattern that matches any of the given
// `|`-separated alternatives on word boundaries, so a trigger inside a longer
// word (e.g. "card" in "cardiology") does not count.
func Words(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + alternatives + `)\b`)
}

// Normalize prepares raw user input for matching: trimmed and lowercased.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Match classifies text against the rule table and returns the first matching
// intent, or Fallback when nothing matches.
func Match(text string) Intent {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.intent
		}
	}
	return Fallback
}
