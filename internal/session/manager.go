// Package session tracks live conversations: one dialogue engine per session
// ID, serialized access per session, and TTL-based expiry.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coradesk/corabot/internal/dialog"
	"github.com/coradesk/corabot/internal/intent"
	"github.com/coradesk/corabot/internal/store"
)

// ErrNotFound is returned for session IDs that were never created, already
// ended, or expired.
var ErrNotFound = errors.New("session not found")

// Manager owns the live engines and serializes message processing per
// session, so two requests for the same conversation never interleave while
// different conversations run in parallel.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	store   store.Store
}

type entry struct {
	mu        sync.Mutex
	engine    *dialog.Engine
	createdAt time.Time
	lastUsed  time.Time
}

func NewManager(st store.Store) *Manager {
	return &Manager{
		entries: make(map[string]*entry),
		store:   st,
	}
}

// Create starts a new session and returns its ID along with the opening
// greeting exchange.
func (m *Manager) Create() (string, dialog.Result, error) {
	id := uuid.NewString()
	eng := dialog.New(nil)
	res := eng.Greeting()

	now := time.Now()
	e := &entry{engine: eng, createdAt: now, lastUsed: now}

	m.mu.Lock()
	m.entries[id] = e
	m.mu.Unlock()

	if err := m.persist(id, e); err != nil {
		return "", dialog.Result{}, fmt.Errorf("saving new session: %w", err)
	}
	return id, res, nil
}

// WithSession runs fn against the session's engine while holding the
// per-session lock, then persists the updated snapshot. Sessions missing
// from memory are rehydrated from the store (e.g. after a restart).
func (m *Manager) WithSession(id string, fn func(*dialog.Engine) error) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastUsed = time.Now()
	if err := fn(e.engine); err != nil {
		return err
	}
	return m.persist(id, e)
}

// End removes the session from memory and deletes its stored state.
func (m *Manager) End(id string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()

	if err := m.store.DeleteSession(id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Cleanup expires sessions idle longer than maxAge, dropping both the
// in-memory engine and the stored snapshot. Returns how many were expired.
func (m *Manager) Cleanup(maxAge time.Duration) int {
	m.mu.Lock()
	expired := make([]string, 0)
	now := time.Now()
	for id, e := range m.entries {
		if now.Sub(e.lastUsed) > maxAge {
			delete(m.entries, id)
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		// Best effort; an orphaned row is retried on the next pass only if
		// the session is touched again, which recreates the entry.
		_ = m.store.DeleteSession(id)
	}
	return len(expired)
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	e, ok := m.entries[id]
	if ok {
		m.mu.Unlock()
		return e, nil
	}
	m.mu.Unlock()

	// Not in memory: try the store before giving up.
	sess, err := m.store.GetSession(id)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if sess == nil {
		return nil, ErrNotFound
	}

	restored := &entry{
		engine:    dialog.Restore(nil, intent.Intent(sess.Context), sess.Transcript),
		createdAt: sess.CreatedAt,
		lastUsed:  time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have rehydrated it first.
	if existing, ok := m.entries[id]; ok {
		return existing, nil
	}
	m.entries[id] = restored
	return restored, nil
}

// persist snapshots the engine state. Caller must hold the entry lock or
// otherwise guarantee exclusive access to the engine.
func (m *Manager) persist(id string, e *entry) error {
	return m.store.SaveSession(store.Session{
		ID:         id,
		Context:    string(e.engine.Context()),
		Transcript: e.engine.History(),
		CreatedAt:  e.createdAt,
		UpdatedAt:  time.Now(),
	})
}
