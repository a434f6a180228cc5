package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coradesk/corabot/internal/dialog"
	"github.com/coradesk/corabot/internal/intent"
	"github.com/coradesk/corabot/internal/kb"
	"github.com/coradesk/corabot/internal/session"
	"github.com/coradesk/corabot/internal/store"
)

func TestCreate(t *testing.T) {
	st := store.NewMemoryStore()
	m := session.NewManager(st)

	id, greeting, err := m.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Contains(t, kb.Responses[intent.Greeting], greeting.Message)
	assert.Len(t, greeting.SuggestedReplies, 3)

	sess, err := st.GetSession(id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Len(t, sess.Transcript, 1, "greeting turn must be persisted")
}

func TestWithSessionPersistsState(t *testing.T) {
	st := store.NewMemoryStore()
	m := session.NewManager(st)

	id, _, err := m.Create()
	require.NoError(t, err)

	err = m.WithSession(id, func(eng *dialog.Engine) error {
		eng.ProcessInput("shipping info")
		return nil
	})
	require.NoError(t, err)

	sess, err := st.GetSession(id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "shipping", sess.Context)
	assert.Len(t, sess.Transcript, 3)
}

func TestWithSessionUnknownID(t *testing.T) {
	m := session.NewManager(store.NewMemoryStore())

	err := m.WithSession("nope", func(*dialog.Engine) error { return nil })
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestEnd(t *testing.T) {
	st := store.NewMemoryStore()
	m := session.NewManager(st)

	id, _, err := m.Create()
	require.NoError(t, err)

	require.NoError(t, m.End(id))

	err = m.WithSession(id, func(*dialog.Engine) error { return nil })
	assert.ErrorIs(t, err, session.ErrNotFound)

	sess, err := st.GetSession(id)
	require.NoError(t, err)
	assert.Nil(t, sess, "ending a session removes its stored state")

	assert.ErrorIs(t, m.End(id), session.ErrNotFound)
}

func TestRehydrateFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	m1 := session.NewManager(st)

	id, _, err := m1.Create()
	require.NoError(t, err)
	require.NoError(t, m1.WithSession(id, func(eng *dialog.Engine) error {
		eng.ProcessInput("shipping info")
		return nil
	}))

	// Fresh manager over the same store, as after a process restart.
	m2 := session.NewManager(st)
	err = m2.WithSession(id, func(eng *dialog.Engine) error {
		assert.Equal(t, intent.Shipping, eng.Context())
		res := eng.ProcessInput("when will it arrive")
		assert.Equal(t, intent.Shipping, res.Context)
		return nil
	})
	require.NoError(t, err)
}

func TestCleanupExpiresIdleSessions(t *testing.T) {
	st := store.NewMemoryStore()
	m := session.NewManager(st)

	id, _, err := m.Create()
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, m.Cleanup(time.Millisecond))

	err = m.WithSession(id, func(*dialog.Engine) error { return nil })
	assert.ErrorIs(t, err, session.ErrNotFound)

	sess, err := st.GetSession(id)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCleanupKeepsActiveSessions(t *testing.T) {
	m := session.NewManager(store.NewMemoryStore())

	id, _, err := m.Create()
	require.NoError(t, err)

	assert.Equal(t, 0, m.Cleanup(time.Hour))
	assert.NoError(t, m.WithSession(id, func(*dialog.Engine) error { return nil }))
}

func TestConcurrentMessagesAreSerialized(t *testing.T) {
	st := store.NewMemoryStore()
	m := session.NewManager(st)

	id, _, err := m.Create()
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithSession(id, func(eng *dialog.Engine) error {
				eng.ProcessInput("what are your business hours")
				return nil
			})
		}()
	}
	wg.Wait()

	sess, err := st.GetSession(id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	// 1 greeting turn + 2 turns per processed message, none lost.
	assert.Len(t, sess.Transcript, 1+2*workers)
}
