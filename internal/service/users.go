package service

import (
	"context"
	"fmt"

	"jsonviews/internal/view/usersearch"
	"jsonviews/pkg/logger"
)

type UserService struct {
	api      PlaceholderAPI
	sessions SessionStorage
}

func NewUserService(api PlaceholderAPI, sessions SessionStorage) *UserService {
	return &UserService{
		api:      api,
		sessions: sessions,
	}
}

// Search loads the user collection on the first call within a session and
// applies query to it. A failed load is only logged: the list stays empty.
func (s *UserService) Search(ctx context.Context, sessionID, query string) (usersearch.State, error) {
	log := logger.FromContext(ctx)

	current, err := currentSession(ctx, s.sessions, sessionID)
	if err != nil {
		return usersearch.State{}, err
	}

	events := make([]usersearch.Event, 0, 2)
	if !current.Search.Loaded {
		users, err := s.api.ListUsers(ctx)
		if err != nil {
			log.Error("error loading users", "error", err)
			events = append(events, usersearch.UsersLoadFailed{Err: err})
		} else {
			log.Debug("users loaded", "count", len(users))
			events = append(events, usersearch.UsersLoaded{Users: users})
		}
	}
	events = append(events, usersearch.QueryChanged{Query: query})

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *Session) error {
		for _, e := range events {
			sess.Search = usersearch.Reduce(sess.Search, e)
		}
		return nil
	})
	if err != nil {
		return usersearch.State{}, fmt.Errorf("error saving session: %w", err)
	}
	return sess.Search, nil
}
