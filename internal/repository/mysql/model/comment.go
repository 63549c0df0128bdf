package model

import (
	"time"

	"github.com/tastebookhq/tastebook/domain"
)

type Comment struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	RecipeID         int64      `gorm:"column:recipe_id;not null;index"`
	UserID           int64      `gorm:"column:user_id;not null;index"`
	UserName         string     `gorm:"column:user_name;size:100"`
	Content          string     `gorm:"type:text;not null"`
	Rating           *int       `gorm:"column:rating"` // null when no rating was given
	Status           string     `gorm:"size:20;not null;default:'pending';index"`
	ModeratedBy      *int64     `gorm:"column:moderated_by"`
	ModeratedAt      *time.Time `gorm:"column:moderated_at;type:datetime"`
	ModerationReason string     `gorm:"column:moderation_reason;size:500"`
	CreatedAt        time.Time  `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:               c.ID,
		RecipeID:         c.RecipeID,
		UserID:           c.UserID,
		UserName:         c.UserName,
		Content:          c.Content,
		Rating:           c.Rating,
		Status:           string(c.Status),
		ModeratedBy:      c.ModeratedBy,
		ModeratedAt:      c.ModeratedAt,
		ModerationReason: c.ModerationReason,
		CreatedAt:        c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:               m.ID,
		RecipeID:         m.RecipeID,
		UserID:           m.UserID,
		UserName:         m.UserName,
		Content:          m.Content,
		Rating:           m.Rating,
		Status:           domain.CommentStatus(m.Status),
		ModeratedBy:      m.ModeratedBy,
		ModeratedAt:      m.ModeratedAt,
		ModerationReason: m.ModerationReason,
		CreatedAt:        m.CreatedAt,
	}
}
