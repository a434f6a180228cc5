// Package dialog implements the single-turn dialogue engine: it classifies a
// user message, resolves one-level contextual follow-ups, escalates on
// frustration signals, and picks a reply plus quick-reply suggestions.
package dialog

import (
	"math/rand"
	"time"

	"github.com/coradesk/corabot/internal/intent"
	"github.com/coradesk/corabot/internal/kb"
	"github.com/coradesk/corabot/internal/sentiment"
)

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Turn is one transcript entry, either side of the conversation.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Result is the outcome of processing one user message.
type Result struct {
	Message          string
	Context          intent.Intent
	SuggestedReplies []string
}

// Engine owns the state of a single conversation. It is not safe for
// concurrent use; callers must serialize access per session.
type Engine struct {
	rng        *rand.Rand
	context    intent.Intent
	transcript []Turn
}

// New creates an engine with empty state. A nil rng gets a time-seeded
// source; tests pass a fixed seed to make response selection deterministic.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng, context: intent.None}
}

// Restore rebuilds an engine from a previously captured context and
// transcript, e.g. after the owning process restarted mid-conversation.
func Restore(rng *rand.Rand, ctx intent.Intent, transcript []Turn) *Engine {
	e := New(rng)
	e.context = ctx
	e.transcript = append(e.transcript, transcript...)
	return e
}

// ProcessInput runs one turn. Priority order: contextual follow-up, forced
// negative-sentiment escalation, empathy probe, global intent match,
// fallback. The original casing of text is kept in the transcript; matching
// happens on the normalized form.
func (e *Engine) ProcessInput(text string) Result {
	e.transcript = append(e.transcript, Turn{Role: RoleUser, Message: text})
	cleaned := intent.Normalize(text)

	if e.context != intent.None {
		if resp, ok := resolveContextual(e.context, cleaned); ok {
			// A contextual hit answers within the current context and
			// must not change it.
			return e.finalize(resp)
		}
	}

	switch sentiment.Detect(cleaned) {
	case sentiment.Negative:
		e.context = intent.Complaint
		return e.finalize(kb.EscalationMessage)
	case sentiment.PotentiallyNegative:
		return e.finalize(kb.EmpathyMessage)
	}

	it := intent.Match(cleaned)
	if it != intent.Fallback {
		e.context = it
	}
	// A fallback match leaves any existing context in place.
	return e.finalize(e.pickResponse(it))
}

// Greeting records and returns the opening bot message, letting the caller
// bootstrap the first exchange before any user input. Context stays unset,
// but the greeting suggestions are surfaced so the client has somewhere to
// start.
func (e *Engine) Greeting() Result {
	resp := e.pickResponse(intent.Greeting)
	e.transcript = append(e.transcript, Turn{Role: RoleBot, Message: resp})
	return Result{
		Message:          resp,
		Context:          e.context,
		SuggestedReplies: kb.QuickRepliesFor(intent.Greeting),
	}
}

// ResetContext clears the conversation context. The transcript is kept.
func (e *Engine) ResetContext() string {
	e.context = intent.None
	return kb.ResetMessage
}

// Context returns the current conversation context, intent.None when unset.
func (e *Engine) Context() intent.Intent {
	return e.context
}

// History returns a copy of the transcript; mutating it does not affect the
// engine.
func (e *Engine) History() []Turn {
	out := make([]Turn, len(e.transcript))
	copy(out, e.transcript)
	return out
}

func (e *Engine) pickResponse(it intent.Intent) string {
	candidates := kb.ResponsesFor(it)
	return candidates[e.rng.Intn(len(candidates))]
}

func (e *Engine) finalize(resp string) Result {
	e.transcript = append(e.transcript, Turn{Role: RoleBot, Message: resp})
	return Result{
		Message:          resp,
		Context:          e.context,
		SuggestedReplies: kb.QuickRepliesFor(e.context),
	}
}
