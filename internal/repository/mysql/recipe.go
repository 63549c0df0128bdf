package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/repository/mysql/model"
)

type recipeRepository struct {
	DB *gorm.DB
}

var _ domain.RecipeRepository = (*recipeRepository)(nil)

func NewRecipeRepository(db *gorm.DB) *recipeRepository {
	return &recipeRepository{
		DB: db,
	}
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var m model.Recipe
	err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	recipe := m.ToDomain()
	return &recipe, nil
}

func (r *recipeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) UpdateRating(ctx context.Context, id int64, stats domain.RatingStats) error {
	// No RowsAffected check here: MySQL reports zero affected rows when
	// the recomputed stats equal the stored ones, which is the normal
	// outcome of a redundant recompute.
	return r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_avg":   stats.Avg,
			"rating_count": stats.Count,
		}).Error
}

func (r *recipeRepository) Reject(ctx context.Context, id int64, rejection domain.RecipeRejection) error {
	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           string(domain.RecipeRejected),
			"rejection_reason": rejection.Reason,
			"rejected_by":      rejection.RejectedBy,
			"rejected_at":      rejection.RejectedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
