package kb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coradesk/corabot/internal/intent"
	"github.com/coradesk/corabot/internal/kb"
)

func TestEveryIntentHasResponses(t *testing.T) {
	for it, responses := range kb.Responses {
		assert.NotEmptyf(t, responses, "intent %q has no responses", it)
	}
	assert.NotEmpty(t, kb.Responses[intent.Fallback])
}

func TestResponsesForUnknownIntentFallsBack(t *testing.T) {
	assert.Equal(t, kb.Responses[intent.Fallback], kb.ResponsesFor(intent.Intent("nonsense")))
	assert.Equal(t, kb.Responses[intent.Fallback], kb.ResponsesFor(intent.None))
}

func TestQuickRepliesFor(t *testing.T) {
	assert.Equal(t,
		[]string{"Business hours", "Return policy", "Shipping info"},
		kb.QuickRepliesFor(intent.Greeting))

	// Intents without curated suggestions get an empty, non-nil list.
	assert.NotNil(t, kb.QuickRepliesFor(intent.Hours))
	assert.Empty(t, kb.QuickRepliesFor(intent.Hours))
	assert.Empty(t, kb.QuickRepliesFor(intent.None))
}
