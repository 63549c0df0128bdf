package model

import (
	"time"

	"github.com/tastebookhq/tastebook/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Title     string    `gorm:"size:200;not null"`
	Status    string    `gorm:"size:20;not null;default:'visible'"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Status:    domain.PostStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
