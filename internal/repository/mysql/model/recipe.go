package model

import (
	"time"

	"github.com/tastebookhq/tastebook/domain"
)

type Recipe struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	UserID          int64      `gorm:"column:user_id;not null;index"`
	Title           string     `gorm:"size:200;not null"`
	Status          string     `gorm:"size:20;not null;default:'published';index"`
	RatingAvg       float64    `gorm:"column:rating_avg;not null;default:0"`
	RatingCount     int64      `gorm:"column:rating_count;not null;default:0"`
	RejectionReason *string    `gorm:"column:rejection_reason;size:500"`
	RejectedBy      *int64     `gorm:"column:rejected_by"`
	RejectedAt      *time.Time `gorm:"column:rejected_at;type:datetime"`
	CreatedAt       time.Time  `gorm:"type:datetime"`
	UpdatedAt       time.Time  `gorm:"type:datetime"`
}

func (Recipe) TableName() string {
	return "recipe"
}

func (m *Recipe) ToDomain() domain.Recipe {
	r := domain.Recipe{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Status:      domain.RecipeStatus(m.Status),
		RatingAvg:   m.RatingAvg,
		RatingCount: m.RatingCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.RejectionReason != nil && m.RejectedBy != nil && m.RejectedAt != nil {
		r.Rejection = &domain.RecipeRejection{
			Reason:     *m.RejectionReason,
			RejectedBy: *m.RejectedBy,
			RejectedAt: *m.RejectedAt,
		}
	}
	return r
}
