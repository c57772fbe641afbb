package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jsonviews/internal/view/postform"
	"jsonviews/pkg/logger"
	"jsonviews/pkg/pagination"
)

const (
	DefaultPostsLimit = 5
	DefaultPostUserID = 1
)

var errSubmitAborted = errors.New("submit aborted")

type PostService struct {
	api      PlaceholderAPI
	sessions SessionStorage
	limit    int
	userID   int64
	now      func() time.Time
}

type PostOption func(*PostService)

func WithPostsLimit(limit int) PostOption {
	return func(s *PostService) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithPostUserID sets the owner attached to every created post.
func WithPostUserID(userID int64) PostOption {
	return func(s *PostService) {
		if userID > 0 {
			s.userID = userID
		}
	}
}

func WithClock(now func() time.Time) PostOption {
	return func(s *PostService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewPostService(api PlaceholderAPI, sessions SessionStorage, opts ...PostOption) *PostService {
	s := &PostService{
		api:      api,
		sessions: sessions,
		limit:    DefaultPostsLimit,
		userID:   DefaultPostUserID,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the post board of the session, loading the first page of
// posts the first time it is asked for.
func (s *PostService) Board(ctx context.Context, sessionID string) (postform.State, error) {
	log := logger.FromContext(ctx)

	current, err := currentSession(ctx, s.sessions, sessionID)
	if err != nil {
		return postform.State{}, err
	}

	var ev postform.Event
	if !current.Board.Loaded {
		posts, err := s.api.ListPosts(ctx, pagination.FirstPage(s.limit))
		if err != nil {
			log.Warn("error loading posts", "error", err)
			ev = postform.PostsLoadFailed{Err: err}
		} else {
			log.Debug("posts loaded", "count", len(posts))
			ev = postform.PostsLoaded{Posts: posts}
		}
	}

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *Session) error {
		if ev != nil {
			sess.Board = postform.Reduce(sess.Board, ev)
		}
		return nil
	})
	if err != nil {
		return postform.State{}, fmt.Errorf("error saving session: %w", err)
	}
	return sess.Board, nil
}

// Submit validates form and, when it is complete, creates the post remotely.
// The remote side only echoes the post back; it does not store it.
// Once the request is issued the board always leaves the loading state,
// whatever the outcome.
func (s *PostService) Submit(ctx context.Context, sessionID string, form postform.Form) (state postform.State, err error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return postform.State{}, fmt.Errorf("session id is empty: %w", ErrInvalidRequest)
	}

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *Session) error {
		if sess.Board.Loading {
			return ErrSubmitInProgress
		}
		sess.Board = postform.Reduce(sess.Board, postform.SubmitRequested{Form: form})
		return nil
	})
	if errors.Is(err, ErrSubmitInProgress) {
		current, cerr := currentSession(ctx, s.sessions, sessionID)
		if cerr != nil {
			return postform.State{}, cerr
		}
		return current.Board, err
	}
	if err != nil {
		return postform.State{}, fmt.Errorf("error saving session: %w", err)
	}
	if !sess.Board.Loading {
		return sess.Board, nil
	}

	var result postform.Event = postform.SubmitFailed{Err: errSubmitAborted}
	defer func() {
		final, ferr := s.sessions.UpdateSession(context.WithoutCancel(ctx), sessionID, func(sess *Session) error {
			sess.Board = postform.Reduce(sess.Board, result)
			return nil
		})
		if ferr != nil {
			log.Error("error finishing submit", "error", ferr)
			err = fmt.Errorf("error saving session: %w", ferr)
			return
		}
		state = final.Board
	}()

	post, err := s.api.CreatePost(ctx, sess.Board.Request(s.userID))
	if err != nil {
		log.Warn("error creating post", "error", err)
		result = postform.SubmitFailed{Err: err}
		return postform.State{}, nil
	}

	log.Info("post created", "post_id", post.ID)
	result = postform.SubmitSucceeded{Post: post, At: s.now()}
	return postform.State{}, nil
}
