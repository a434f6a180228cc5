// Package store persists live chat sessions so they survive between HTTP
// requests (and process restarts). A session's row lives exactly as long as
// the session: it is deleted when the session ends or expires.
package store

import (
	"time"

	"github.com/coradesk/corabot/internal/dialog"
)

// Session is a snapshot of one conversation's state.
type Session struct {
	ID         string        `json:"id"`
	Context    string        `json:"context,omitempty"`
	Transcript []dialog.Turn `json:"transcript"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type Store interface {
	SaveSession(s Session) error
	// GetSession returns (nil, nil) when the session does not exist.
	GetSession(id string) (*Session, error)
	DeleteSession(id string) error
	Close() error
}
