package domain

import (
	"context"
	"time"
)

// CommentStatus is the moderation state of a comment.
//
// pending is the initial state of every submitted comment. approved and
// hidden are both reachable from each other and from pending; neither is
// terminal. Hard deletion is a separate irreversible operation, not a
// status.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentHidden   CommentStatus = "hidden"
)

// Comment is a user's feedback on a recipe, optionally carrying a rating.
// The rating is immutable once set; only the moderation fields (Status,
// ModeratedBy, ModeratedAt, ModerationReason) change after creation.
type Comment struct {
	ID               int64         `json:"id"`
	RecipeID         int64         `json:"recipe_id"`
	UserID           int64         `json:"user_id"`
	UserName         string        `json:"user_name,omitempty"`
	Content          string        `json:"content"`
	Rating           *int          `json:"rating,omitempty"` // 1..5 when present
	Status           CommentStatus `json:"status"`
	ModeratedBy      *int64        `json:"moderated_by,omitempty"`
	ModeratedAt      *time.Time    `json:"moderated_at,omitempty"`
	ModerationReason string        `json:"moderation_reason,omitempty"` // meaningful only when hidden
	CreatedAt        time.Time     `json:"created_at"`
}

// HasRating reports whether the comment carries a rating value.
func (c *Comment) HasRating() bool {
	return c.Rating != nil
}

// CommentFilter narrows comment listings.
type CommentFilter struct {
	RecipeID int64         // zero means any recipe
	Status   CommentStatus // empty means any status
	Rated    *bool         // nil means both rated and unrated
}

// ModerationAction is a bulk moderation verb.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionHide    ModerationAction = "hide"
)

// Valid reports whether the action is in the allowed bulk set.
func (a ModerationAction) Valid() bool {
	return a == ActionApprove || a == ActionHide
}

// BulkSuccess records one successfully moderated comment with enough
// detail to drive the per-recipe aggregate recomputation afterwards.
type BulkSuccess struct {
	CommentID   int64 `json:"comment_id"`
	RecipeID    int64 `json:"recipe_id"`
	HadRating   bool  `json:"had_rating"`
	WasApproved bool  `json:"was_approved"`
}

// BulkFailure records one comment that could not be moderated. A failed
// item never aborts the rest of the batch.
type BulkFailure struct {
	CommentID int64  `json:"comment_id"`
	Reason    string `json:"reason"`
}

// BulkResult is the outcome of a bulk moderation pass.
type BulkResult struct {
	Successful []BulkSuccess         `json:"successful"`
	Failed     []BulkFailure         `json:"failed"`
	Aggregates map[int64]RatingStats `json:"aggregates"` // recipe id -> recomputed stats
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	// Store creates a new comment, backfilling its ID.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a comment. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// GetByIDs retrieves the comments whose ids exist; missing ids are
	// simply absent from the result, not an error.
	GetByIDs(ctx context.Context, ids []int64) ([]*Comment, error)

	// Fetch returns a window of comments plus window metadata, honoring
	// the page-mode-wins selection rule of ListWindow.
	Fetch(ctx context.Context, filter CommentFilter, window ListWindow) ([]Comment, PageInfo, error)

	// UpdateModeration applies a moderation transition to a comment.
	// Returns ErrNotFound if no row was affected.
	UpdateModeration(ctx context.Context, id int64, status CommentStatus, moderatorID int64, moderatedAt time.Time, reason string) error

	// Delete hard-removes a comment. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error

	// AggregateRatings computes count and mean of ratings across approved,
	// rating-bearing comments of a recipe.
	AggregateRatings(ctx context.Context, recipeID int64) (RatingStats, error)

	// CountByStatus returns comment counts grouped by status.
	CountByStatus(ctx context.Context) (map[CommentStatus]int64, error)

	// CountRated returns the number of comments carrying a rating.
	CountRated(ctx context.Context) (int64, error)

	// CountCreatedSince returns the number of comments created at or
	// after the given instant.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// CommentUsecase is the public (reader-facing) comment surface.
type CommentUsecase interface {
	// Create submits a new comment on a recipe; it always starts pending.
	// Returns ErrNotFound if the recipe doesn't exist and
	// ErrBadParamInput for an out-of-range rating or empty content.
	Create(ctx context.Context, c *Comment) error

	// FetchByRecipe lists the approved comments of a recipe.
	FetchByRecipe(ctx context.Context, recipeID int64, window ListWindow) ([]Comment, PageInfo, error)
}

// CommentStats aggregates moderation-facing comment counts.
type CommentStats struct {
	Total    int64                   `json:"total"`
	ByStatus map[CommentStatus]int64 `json:"by_status"`
	Rated    int64                   `json:"rated"`
	Last7d   int64                   `json:"last_7d"`
}

// ModerationUsecase is the admin-facing comment moderation surface.
type ModerationUsecase interface {
	// Fetch lists comments of any status for the moderation queue.
	Fetch(ctx context.Context, filter CommentFilter, window ListWindow) ([]Comment, PageInfo, error)

	// Approve transitions a comment to approved and recomputes the
	// recipe's rating aggregate when the comment carries a rating.
	// Returns ErrNotFound if the comment is absent.
	Approve(ctx context.Context, id int64, actor Actor) (*Comment, error)

	// Hide transitions a comment to hidden. The aggregate is recomputed
	// only when the comment was approved and rated before the call.
	Hide(ctx context.Context, id int64, actor Actor, reason string) (*Comment, error)

	// Delete hard-removes a comment. actor may be nil; the audit trail
	// then records SystemActor. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int64, actor *Actor) error

	// BulkModerate applies approve or hide to a set of comments,
	// isolating per-item failures and recomputing each affected recipe's
	// aggregate exactly once.
	BulkModerate(ctx context.Context, ids []int64, action ModerationAction, actor Actor, reason string) (*BulkResult, error)

	// Stats returns aggregate comment counts for the admin dashboard.
	Stats(ctx context.Context) (*CommentStats, error)
}
