// Package kb holds the static knowledge base: canned responses per intent,
// quick-reply suggestions per context, and the fixed service messages. Pure
// data, no behavior beyond lookups.
package kb

import "github.com/coradesk/corabot/internal/intent"

// Fixed messages used by the dialogue engine outside normal intent responses.
const (
	EscalationMessage = "I notice you seem frustrated. I'd like to help resolve your issue. Would you prefer to speak with a human representative?"
	EmpathyMessage    = "I understand this may be frustrating. Let me try to help you more effectively. Could you provide more details?"
	ResetMessage      = "Context has been reset. How else can I help you?"
)

// Responses maps each intent to its candidate replies. Every intent,
// Fallback included, has at least one entry.
var Responses = map[intent.Intent][]string{
	intent.Greeting: {
		"Hello! Welcome to our customer service. How can I help you today?",
		"Hi there! I'm your virtual assistant. What can I do for you?",
		"Welcome! I'm here to assist you with any questions or concerns.",
	},
	intent.Goodbye: {
		"Thank you for chatting with us. Have a great day!",
		"Is there anything else I can help you with? If not, have a wonderful day!",
		"Thanks for reaching out. Feel free to contact us again if you need further assistance.",
	},
	intent.Hours: {
		"Our business hours are Monday to Friday, 9 AM to 6 PM, and Saturday 10 AM to 4 PM. We're closed on Sundays.",
		"We're open weekdays 9-6 and Saturdays 10-4. Closed on Sundays.",
	},
	intent.Returns: {
		"You can return items within 30 days of purchase with the original receipt. Please visit our returns page for more details.",
		"Our return policy allows returns within 30 days. Make sure you have your receipt or order number ready.",
	},
	intent.Shipping: {
		"Standard shipping takes 3-5 business days. Express shipping is available for 1-2 business days at an additional cost.",
		"We offer standard (3-5 days) and express (1-2 days) shipping options.",
	},
	intent.Payment: {
		"We accept all major credit cards, PayPal, and Apple Pay as payment methods.",
		"You can pay using credit cards, PayPal, or Apple Pay on our platform.",
	},
	intent.Contact: {
		"You can reach our customer service team at support@example.com or call us at 1-800-123-4567.",
		"Our support email is support@example.com, and our phone line is 1-800-123-4567.",
	},
	intent.ProductInfo: {
		"For detailed product information, please provide the specific product name or ID, and I can help you with that.",
		"I'd be happy to provide product details. Could you specify which product you're interested in?",
	},
	intent.Discount: {
		"We regularly offer seasonal discounts and promotions. Sign up for our newsletter to stay updated on the latest deals.",
		"You can use code WELCOME10 for 10% off your first purchase. We also have seasonal promotions throughout the year.",
	},
	intent.Account: {
		"To manage your account, please log in on our website and navigate to 'My Account' section.",
		"Account settings can be accessed from the 'My Account' page after logging in.",
	},
	intent.Complaint: {
		"I'm sorry to hear you're experiencing issues. Could you provide more details so we can address your concerns properly?",
		"I apologize for any inconvenience. Please share more information about your issue, and I'll do my best to help resolve it.",
	},
	intent.Fallback: {
		"I'm not sure I understand your question. Could you please rephrase it?",
		"I don't have information on that topic yet. Would you like me to connect you with a human representative?",
		"I'm still learning! Could you try asking your question differently or choose from our common topics?",
	},
}

// QuickReplies maps contexts to suggested follow-up prompts. Intents without
// curated suggestions are simply absent.
var QuickReplies = map[intent.Intent][]string{
	intent.Greeting:    {"Business hours", "Return policy", "Shipping info"},
	intent.Returns:     {"How to return", "Return timeframe", "Refund process"},
	intent.Shipping:    {"Shipping cost", "Delivery time", "Track my order"},
	intent.ProductInfo: {"Product price", "Product availability", "Product features"},
	intent.Complaint:   {"Speak to representative", "Submit complaint", "Request callback"},
}

// ResponsesFor returns the candidate replies for an intent, falling back to
// the Fallback set for unknown values.
func ResponsesFor(it intent.Intent) []string {
	if rs, ok := Responses[it]; ok {
		return rs
	}
	return Responses[intent.Fallback]
}

// QuickRepliesFor returns the suggestions for a context, or an empty list
// when there are none (including when there is no context at all).
func QuickRepliesFor(it intent.Intent) []string {
	if qr, ok := QuickReplies[it]; ok {
		return qr
	}
	return []string{}
}
