package storage

import (
	"context"

	"parking-bot/internal/models"
)

// Session is the persisted login state: the bearer token and the profile it
// belonged to when last refreshed.
type Session struct {
	Token string
	User  models.User
}

// SessionStore keeps the session across restarts: one session at a time,
// cleared on logout. No token in the store means logged out.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context) (*Session, error) // nil when logged out
	Clear(ctx context.Context) error
	Close() error
}
