package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"jsonviews/internal/model"
	"jsonviews/internal/view/postform"
	"jsonviews/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageUsers = "users"
	pagePosts = "posts"
	pageError = "error"
)

type usersPage struct {
	Title string
	Query string
	Users []model.User
}

type postsPage struct {
	Title   string
	Posts   []model.Post
	Form    postform.Form
	Loading bool
	Error   string
}

type errorPage struct {
	Title  string
	Status int
	Error  string
}

// parseTemplates builds one template set per page, each sharing the layout.
func parseTemplates() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, 3)
	for _, page := range []string{pageUsers, pagePosts, pageError} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}
		out[page] = t
	}
	return out, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	t, ok := h.templates[page]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.FromContext(r.Context()).Error("error rendering page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.render(w, r, status, pageError, errorPage{
		Title:  http.StatusText(status),
		Status: status,
		Error:  msg,
	})
}
