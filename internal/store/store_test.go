package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coradesk/corabot/internal/dialog"
	"github.com/coradesk/corabot/internal/store"
)

func testStores(t *testing.T) map[string]store.Store {
	t.Helper()

	boltStore, err := store.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { boltStore.Close() })

	return map[string]store.Store{
		"memory": store.NewMemoryStore(),
		"bolt":   boltStore,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			now := time.Now().UTC().Truncate(time.Second)
			sess := store.Session{
				ID:      "abc",
				Context: "shipping",
				Transcript: []dialog.Turn{
					{Role: dialog.RoleUser, Message: "shipping info"},
					{Role: dialog.RoleBot, Message: "We offer standard (3-5 days) and express (1-2 days) shipping options."},
				},
				CreatedAt: now,
				UpdatedAt: now,
			}

			require.NoError(t, st.SaveSession(sess))

			got, err := st.GetSession("abc")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, sess.Context, got.Context)
			assert.Equal(t, sess.Transcript, got.Transcript)
			assert.True(t, sess.CreatedAt.Equal(got.CreatedAt))

			require.NoError(t, st.DeleteSession("abc"))
			got, err = st.GetSession("abc")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestGetMissingSession(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := st.GetSession("never-created")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.SaveSession(store.Session{ID: "s1", Context: "hours"}))
			require.NoError(t, st.SaveSession(store.Session{ID: "s1", Context: "returns"}))

			got, err := st.GetSession("s1")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "returns", got.Context)
		})
	}
}
