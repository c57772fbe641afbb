package web

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"jsonviews/internal/service"
	"jsonviews/internal/view/postform"
	"jsonviews/internal/view/usersearch"
	"jsonviews/pkg/logger"
)

type UserService interface {
	Search(ctx context.Context, sessionID, query string) (usersearch.State, error)
}

type PostService interface {
	Board(ctx context.Context, sessionID string) (postform.State, error)
	Submit(ctx context.Context, sessionID string, form postform.Form) (postform.State, error)
}

type Handler struct {
	users     UserService
	posts     PostService
	templates map[string]*template.Template
}

func NewHandler(users UserService, posts PostService) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		users:     users,
		posts:     posts,
		templates: templates,
	}, nil
}

// Routes returns the full handler chain: recovery, session cookie, request
// logging and the page routes.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /users", h.searchUsers)
	mux.HandleFunc("GET /posts", h.showPosts)
	mux.HandleFunc("POST /posts", h.submitPost)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.renderError(w, r, http.StatusNotFound, "Page not found")
	})

	return h.recoverer(withSession(withRequestLogger(mux)))
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	state, err := h.users.Search(ctx, sessionID(ctx), query)
	if err != nil {
		logger.FromContext(ctx).Error("error searching users", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.render(w, r, http.StatusOK, pageUsers, usersPage{
		Title: "User Search App",
		Query: state.Query,
		Users: state.Visible(),
	})
}

func (h *Handler) showPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := h.posts.Board(ctx, sessionID(ctx))
	if err != nil {
		logger.FromContext(ctx).Error("error loading board", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}
	h.renderBoard(w, r, http.StatusOK, state)
}

func (h *Handler) submitPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Malformed form")
		return
	}
	form := postform.Form{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	}

	state, err := h.posts.Submit(ctx, sessionID(ctx), form)
	switch {
	case errors.Is(err, service.ErrSubmitInProgress):
		h.renderBoard(w, r, http.StatusConflict, state)
		return
	case err != nil:
		logger.FromContext(ctx).Error("error submitting post", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

func (h *Handler) renderBoard(w http.ResponseWriter, r *http.Request, status int, state postform.State) {
	h.render(w, r, status, pagePosts, postsPage{
		Title:   "Add a New Post",
		Posts:   state.Posts,
		Form:    state.Form,
		Loading: state.Loading,
		Error:   state.Error,
	})
}
