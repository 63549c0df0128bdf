package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (p *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var m model.Post
	err := p.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	post := m.ToDomain()
	return &post, nil
}

func (p *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := p.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *postRepository) UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) error {
	result := p.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ? AND status <> ?", id, string(status)).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either absent or already in the target status; distinguish.
		exists, err := p.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (p *postRepository) Delete(ctx context.Context, id int64) error {
	result := p.DB.WithContext(ctx).Delete(&model.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
