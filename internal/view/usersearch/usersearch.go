// Package usersearch holds the state of the user search page and the pure
// transitions between its snapshots.
package usersearch

import (
	"strings"

	"jsonviews/internal/model"
)

type State struct {
	Users  []model.User
	Query  string
	Loaded bool
}

type Event interface {
	isEvent()
}

type UsersLoaded struct {
	Users []model.User
}

// UsersLoadFailed leaves the list empty. The page has no error surface for it.
type UsersLoadFailed struct {
	Err error
}

type QueryChanged struct {
	Query string
}

func (UsersLoaded) isEvent()     {}
func (UsersLoadFailed) isEvent() {}
func (QueryChanged) isEvent()    {}

func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case UsersLoaded:
		if s.Loaded {
			return s
		}
		s.Users = append([]model.User(nil), ev.Users...)
		s.Loaded = true
	case UsersLoadFailed:
		if s.Loaded {
			return s
		}
		s.Users = nil
		s.Loaded = true
	case QueryChanged:
		s.Query = ev.Query
	}
	return s
}

func (s State) Visible() []model.User {
	return Filter(s.Users, s.Query)
}

// Filter returns users whose name contains query, ignoring case.
// An empty query returns users as is.
func Filter(users []model.User, query string) []model.User {
	if query == "" {
		return users
	}
	needle := strings.ToLower(query)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			out = append(out, u)
		}
	}
	return out
}
