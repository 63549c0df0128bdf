package comment

import (
	"context"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tastebookhq/tastebook/domain"
)

// service is the public comment surface: submission and the approved
// listing readers see. Moderation lives in the moderation usecase.
type service struct {
	commentRepo domain.CommentRepository
	recipeRepo  domain.RecipeRepository
	sanitizer   *bluemonday.Policy
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, recipeRepo domain.RecipeRepository) *service {
	return &service{
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	c.Content = strings.TrimSpace(s.sanitizer.Sanitize(c.Content))
	if c.Content == "" {
		return domain.ErrBadParamInput
	}
	if c.Rating != nil && (*c.Rating < 1 || *c.Rating > 5) {
		return domain.ErrBadParamInput
	}

	exists, err := s.recipeRepo.Exists(ctx, c.RecipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	c.Status = domain.CommentPending
	c.CreatedAt = time.Now()
	return s.commentRepo.Store(ctx, c)
}

func (s *service) FetchByRecipe(ctx context.Context, recipeID int64, window domain.ListWindow) ([]domain.Comment, domain.PageInfo, error) {
	exists, err := s.recipeRepo.Exists(ctx, recipeID)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if !exists {
		return nil, domain.PageInfo{}, domain.ErrNotFound
	}

	filter := domain.CommentFilter{
		RecipeID: recipeID,
		Status:   domain.CommentApproved,
	}
	return s.commentRepo.Fetch(ctx, filter, window)
}
