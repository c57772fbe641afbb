package inmemory

import (
	"context"
	"sync"
	"time"

	"jsonviews/internal/model"
	"jsonviews/internal/service"
)

type SessionStorage struct {
	mu       sync.Mutex
	sessions map[string]service.Session
	now      func() time.Time
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]service.Session),
		now:      time.Now,
	}
}

var _ service.SessionStorage = (*SessionStorage)(nil)

func (s *SessionStorage) GetSession(_ context.Context, id string) (service.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return service.Session{}, service.ErrNotFound
	}
	return sess, nil
}

func (s *SessionStorage) UpdateSession(_ context.Context, id string, fn func(*service.Session) error) (service.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = service.Session{ID: id}
	}

	// fn must not leak edits into the stored slices when it fails
	sess.Search.Users = cloneSlice(sess.Search.Users)
	sess.Board.Posts = cloneSlice(sess.Board.Posts)

	if err := fn(&sess); err != nil {
		return service.Session{}, err
	}

	sess.ID = id
	sess.UpdatedAt = s.now()
	s.sessions[id] = sess
	return sess, nil
}

func (s *SessionStorage) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return service.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// PruneSessions drops sessions not touched since before and reports how many went away.
func (s *SessionStorage) PruneSessions(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(before) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

func (s *SessionStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func cloneSlice[T model.User | model.Post](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
