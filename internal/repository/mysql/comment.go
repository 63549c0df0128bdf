package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/repository"
	"github.com/tastebookhq/tastebook/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var m model.Comment
	err := c.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	comment := m.ToDomain()
	return &comment, nil
}

func (c *commentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Comment, error) {
	var models []model.Comment
	err := c.DB.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(models))
	for i := range models {
		comment := models[i].ToDomain()
		res = append(res, &comment)
	}
	return res, nil
}

// commentSortField whitelists sortable columns; anything else falls back
// to created_at.
func commentSortField(field string) string {
	switch field {
	case "rating", "id", "created_at":
		return field
	default:
		return "created_at"
	}
}

func (c *commentRepository) filtered(ctx context.Context, filter domain.CommentFilter) *gorm.DB {
	query := c.DB.WithContext(ctx).Model(&model.Comment{})
	if filter.RecipeID != 0 {
		query = query.Where("recipe_id = ?", filter.RecipeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Rated != nil {
		if *filter.Rated {
			query = query.Where("rating IS NOT NULL")
		} else {
			query = query.Where("rating IS NULL")
		}
	}
	return query
}

func (c *commentRepository) Fetch(ctx context.Context, filter domain.CommentFilter, window domain.ListWindow) ([]domain.Comment, domain.PageInfo, error) {
	limit := window.ClampedLimit()
	sortField := commentSortField(window.SortBy)
	direction := "ASC"
	if window.Desc() {
		direction = "DESC"
	}
	order := sortField + " " + direction + ", id " + direction

	var total int64
	if err := c.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, domain.PageInfo{}, err
	}

	if window.PageMode() {
		page := window.Page
		var models []model.Comment
		err := c.filtered(ctx, filter).
			Order(order).
			Offset(int((page - 1) * limit)).
			Limit(int(limit)).
			Find(&models).Error
		if err != nil {
			return nil, domain.PageInfo{}, err
		}
		return commentsToDomain(models), domain.NewPagePageInfo(page, limit, total), nil
	}

	query := c.filtered(ctx, filter)
	if cursorID := repository.DecodeCursor(window.Cursor); cursorID > 0 {
		if window.Desc() {
			query = query.Where("id < ?", cursorID)
		} else {
			query = query.Where("id > ?", cursorID)
		}
	}

	// Fetch one extra row to learn whether a next page exists.
	var models []model.Comment
	err := query.Order(order).Limit(int(limit + 1)).Find(&models).Error
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	hasNext := int64(len(models)) > limit
	if hasNext {
		models = models[:limit]
	}
	items := commentsToDomain(models)

	nextCursor := ""
	if len(items) > 0 {
		nextCursor = repository.EncodeCursor(items[len(items)-1].ID)
	}
	return items, domain.NewCursorPageInfo(total, nextCursor, hasNext), nil
}

func commentsToDomain(models []model.Comment) []domain.Comment {
	res := make([]domain.Comment, len(models))
	for i := range models {
		res[i] = models[i].ToDomain()
	}
	return res
}

func (c *commentRepository) UpdateModeration(ctx context.Context, id int64, status domain.CommentStatus, moderatorID int64, moderatedAt time.Time, reason string) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":            string(status),
			"moderated_by":      moderatorID,
			"moderated_at":      moderatedAt,
			"moderation_reason": reason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) AggregateRatings(ctx context.Context, recipeID int64) (domain.RatingStats, error) {
	var row struct {
		Cnt int64
		Avg float64
	}
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Select("COUNT(*) AS cnt, COALESCE(AVG(rating), 0) AS avg").
		Where("recipe_id = ? AND status = ? AND rating IS NOT NULL", recipeID, domain.CommentApproved).
		Scan(&row).Error
	if err != nil {
		return domain.RatingStats{}, err
	}
	return domain.RatingStats{Avg: row.Avg, Count: row.Cnt}, nil
}

func (c *commentRepository) CountByStatus(ctx context.Context) (map[domain.CommentStatus]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[domain.CommentStatus]int64, len(rows))
	for _, row := range rows {
		res[domain.CommentStatus(row.Status)] = row.Cnt
	}
	return res, nil
}

func (c *commentRepository) CountRated(ctx context.Context) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("rating IS NOT NULL").
		Count(&count).Error
	return count, err
}

func (c *commentRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
