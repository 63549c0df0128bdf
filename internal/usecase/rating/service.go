package rating

import (
	"context"

	"github.com/tastebookhq/tastebook/domain"
)

// service recomputes a recipe's rating aggregate from current comment
// state. The aggregate is derived data: at all times it should equal the
// count and mean of ratings across approved, rating-bearing comments.
// Recompute is idempotent, so every caller that could have changed that
// set simply calls it after mutating.
type service struct {
	commentRepo domain.CommentRepository
	recipeRepo  domain.RecipeRepository
}

var _ domain.RatingUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, recipeRepo domain.RecipeRepository) *service {
	return &service{
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
	}
}

func (s *service) Recompute(ctx context.Context, recipeID int64) (domain.RatingStats, error) {
	stats, err := s.commentRepo.AggregateRatings(ctx, recipeID)
	if err != nil {
		return domain.RatingStats{}, err
	}
	if err := s.recipeRepo.UpdateRating(ctx, recipeID, stats); err != nil {
		return domain.RatingStats{}, err
	}
	return stats, nil
}
