package model

import "time"

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

type Post struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// IsNew reports whether the post was created during the current session.
// Posts loaded from the server never carry a creation timestamp.
func (p Post) IsNew() bool {
	return p.CreatedAt != nil
}

func (p Post) CreatedAtISO() string {
	if p.CreatedAt == nil {
		return ""
	}
	return p.CreatedAt.UTC().Format(isoLayout)
}

type NewPost struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}
