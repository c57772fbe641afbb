package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jsonviews/internal/view/postform"
	"jsonviews/internal/view/usersearch"
)

// Session is the per-visitor snapshot of both pages.
type Session struct {
	ID        string
	Search    usersearch.State
	Board     postform.State
	UpdatedAt time.Time
}

// SessionStorage keeps visitor sessions. UpdateSession creates the session
// when it does not exist yet and commits only when fn returns nil.
type SessionStorage interface {
	GetSession(ctx context.Context, id string) (Session, error)
	UpdateSession(ctx context.Context, id string, fn func(*Session) error) (Session, error)
}

func currentSession(ctx context.Context, st SessionStorage, id string) (Session, error) {
	if id == "" {
		return Session{}, fmt.Errorf("session id is empty: %w", ErrInvalidRequest)
	}
	sess, err := st.GetSession(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Session{ID: id}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("error getting session: %w", err)
	}
	return sess, nil
}
