package dialog

import (
	"regexp"

	"github.com/coradesk/corabot/internal/intent"
)

// contextRule is a follow-up pattern valid only while its group's intent is
// the current context. Within a group the first match wins.
type contextRule struct {
	pattern  *regexp.Regexp
	response string
}

var contextRules = map[intent.Intent][]contextRule{
	intent.ProductInfo: {
		{
			intent.Words(`price|cost|how much`),
			"Product prices vary depending on the model and features. Could you specify which product you're interested in?",
		},
		{
			intent.Words(`available|stock|in stock`),
			"To check product availability, please provide the specific product name or visit our website's inventory section.",
		},
		{
			intent.Words(`feature|specification|detail|what can it do`),
			"Our products come with various features depending on the model. Could you specify which product you're asking about?",
		},
	},
	intent.Shipping: {
		{
			intent.Words(`track|where|status|when|arrive`),
			"To track your order, please enter your order number or log into your account to view shipping status.",
		},
		{
			intent.Words(`cost|price|fee|how much`),
			"Shipping costs depend on your location and the chosen shipping method. Standard shipping starts at $5.99, while express shipping starts at $12.99.",
		},
		{
			intent.Words(`international|abroad|overseas|country`),
			"Yes, we ship internationally to over 50 countries. International shipping typically takes 7-14 business days depending on the destination.",
		},
	},
	intent.Returns: {
		{
			intent.Words(`how|process|steps|where`),
			"To process a return, log into your account, select the order, and click on 'Return Items'. You'll receive a prepaid shipping label to send the item back.",
		},
		{
			intent.Words(`money back|refund|reimburse`),
			"Refunds are processed within 3-5 business days after we receive the returned item. The amount will be credited back to your original payment method.",
		},
		{
			intent.Words(`damaged|broken|not working`),
			"For damaged items, please take a photo of the damage and contact our support team. We'll arrange a replacement or refund without requiring you to return the item.",
		},
	},
}

// resolveContextual tries the follow-up rules registered for ctx against the
// normalized text. The second return is false when ctx has no rule group or
// no sub-rule matches, which sends the turn on to global intent matching.
// Context itself is never changed here.
func resolveContextual(ctx intent.Intent, text string) (string, bool) {
	for _, r := range contextRules[ctx] {
		if r.pattern.MatchString(text) {
			return r.response, true
		}
	}
	return "", false
}
