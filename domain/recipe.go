package domain

import (
	"context"
	"time"
)

// RecipeStatus is the publication state of a recipe. A recipe rejected
// through report resolution keeps its row; recipes are never destroyed by
// a single report, unlike comments.
type RecipeStatus string

const (
	RecipePublished RecipeStatus = "published"
	RecipeRejected  RecipeStatus = "rejected"
)

// RatingStats is the derived rating aggregate stored on a recipe. It must
// equal the count and mean of ratings across approved, rating-bearing
// comments; every mutation that can change that set triggers a recompute.
type RatingStats struct {
	Avg   float64 `json:"avg"`
	Count int64   `json:"count"`
}

// RecipeRejection records why and by whom a recipe was rejected.
type RecipeRejection struct {
	Reason     string    `json:"reason"`
	RejectedBy int64     `json:"rejected_by"`
	RejectedAt time.Time `json:"rejected_at"`
}

// Recipe models the slice of the recipe entity this subsystem touches:
// the rating aggregate and the rejection record.
type Recipe struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	Title       string           `json:"title"`
	Status      RecipeStatus     `json:"status"`
	RatingAvg   float64          `json:"rating_avg"`
	RatingCount int64            `json:"rating_count"`
	Rejection   *RecipeRejection `json:"rejection,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// RecipeRepository defines the contract for recipe persistence.
type RecipeRepository interface {
	// GetByID retrieves a recipe. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Recipe, error)

	// Exists reports whether a recipe with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// UpdateRating writes the recomputed aggregate onto the recipe.
	UpdateRating(ctx context.Context, id int64, stats RatingStats) error

	// Reject sets the recipe status to rejected and stores the rejection
	// record. Returns ErrNotFound if absent.
	Reject(ctx context.Context, id int64, rejection RecipeRejection) error
}

// RatingUsecase recomputes a recipe's rating aggregate from current
// comment state. Recompute is a pure function of that state and safe to
// call redundantly; both the single-item and bulk moderation paths rely
// on its idempotence.
type RatingUsecase interface {
	Recompute(ctx context.Context, recipeID int64) (RatingStats, error)
}
