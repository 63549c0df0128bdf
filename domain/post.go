package domain

import (
	"context"
	"time"
)

// PostStatus is the visibility state of a community post.
type PostStatus string

const (
	PostVisible PostStatus = "visible"
	PostHidden  PostStatus = "hidden"
)

// Post is a community post. Only the slice needed by report targeting is
// modeled here: existence checks and the hide/remove resolutions.
type Post struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	Status    PostStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// PostRepository defines the contract for post persistence.
type PostRepository interface {
	// GetByID retrieves a post. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Exists reports whether a post with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// UpdateStatus changes a post's visibility. Returns ErrNotFound if
	// absent.
	UpdateStatus(ctx context.Context, id int64, status PostStatus) error

	// Delete hard-removes a post. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
