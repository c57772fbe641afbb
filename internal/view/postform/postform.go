// Package postform holds the state of the post board: the loaded posts, the
// compose form and the submit lifecycle idle -> loading -> idle.
package postform

import (
	"fmt"
	"strings"
	"time"

	"jsonviews/internal/model"

	"github.com/go-playground/validator/v10"
)

const (
	MsgLoadFailed   = "Failed to load posts"
	MsgRequired     = "Both title and body are required!"
	MsgSubmitFailed = "Failed to add post. Try again."
)

var validate = validator.New()

type Form struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

type State struct {
	Posts   []model.Post
	Form    Form
	Loading bool
	Loaded  bool
	Error   string
}

type Event interface {
	isEvent()
}

type PostsLoaded struct {
	Posts []model.Post
}

type PostsLoadFailed struct {
	Err error
}

type SubmitRequested struct {
	Form Form
}

type SubmitSucceeded struct {
	Post model.Post
	At   time.Time
}

type SubmitFailed struct {
	Err error
}

func (PostsLoaded) isEvent()     {}
func (PostsLoadFailed) isEvent() {}
func (SubmitRequested) isEvent() {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Validate checks that both fields hold something other than whitespace.
func Validate(f Form) error {
	trimmed := Form{
		Title: strings.TrimSpace(f.Title),
		Body:  strings.TrimSpace(f.Body),
	}
	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("validating form: %w", err)
	}
	return nil
}

func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case PostsLoaded:
		if s.Loaded {
			return s
		}
		posts := make([]model.Post, 0, len(s.Posts)+len(ev.Posts))
		for _, p := range s.Posts {
			if p.IsNew() {
				posts = append(posts, p)
			}
		}
		s.Posts = append(posts, ev.Posts...)
		s.Loaded = true

	case PostsLoadFailed:
		if s.Loaded {
			return s
		}
		s.Error = MsgLoadFailed
		s.Loaded = true

	case SubmitRequested:
		if s.Loading {
			return s
		}
		s.Form = ev.Form
		s.Error = ""
		if err := Validate(ev.Form); err != nil {
			s.Error = MsgRequired
			return s
		}
		s.Loading = true

	case SubmitSucceeded:
		at := ev.At
		p := ev.Post
		p.CreatedAt = &at

		posts := make([]model.Post, 0, len(s.Posts)+1)
		posts = append(posts, p)
		s.Posts = append(posts, s.Posts...)
		s.Form = Form{}
		s.Loading = false

	case SubmitFailed:
		s.Error = MsgSubmitFailed
		s.Loading = false
	}
	return s
}

// Request builds the write payload for the current form.
func (s State) Request(userID int64) model.NewPost {
	return model.NewPost{
		Title:  s.Form.Title,
		Body:   s.Form.Body,
		UserID: userID,
	}
}
