package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	var c *domain.Comment
	if v := args.Get(0); v != nil {
		c = v.(*domain.Comment)
	}
	return c, args.Error(1)
}

func (m *CommentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, ids)
	var res []*domain.Comment
	if v := args.Get(0); v != nil {
		res = v.([]*domain.Comment)
	}
	return res, args.Error(1)
}

func (m *CommentRepository) Fetch(ctx context.Context, filter domain.CommentFilter, window domain.ListWindow) ([]domain.Comment, domain.PageInfo, error) {
	args := m.Called(ctx, filter, window)
	var res []domain.Comment
	if v := args.Get(0); v != nil {
		res = v.([]domain.Comment)
	}
	return res, args.Get(1).(domain.PageInfo), args.Error(2)
}

func (m *CommentRepository) UpdateModeration(ctx context.Context, id int64, status domain.CommentStatus, moderatorID int64, moderatedAt time.Time, reason string) error {
	args := m.Called(ctx, id, status, moderatorID, moderatedAt, reason)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) AggregateRatings(ctx context.Context, recipeID int64) (domain.RatingStats, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(domain.RatingStats), args.Error(1)
}

func (m *CommentRepository) CountByStatus(ctx context.Context) (map[domain.CommentStatus]int64, error) {
	args := m.Called(ctx)
	var res map[domain.CommentStatus]int64
	if v := args.Get(0); v != nil {
		res = v.(map[domain.CommentStatus]int64)
	}
	return res, args.Error(1)
}

func (m *CommentRepository) CountRated(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommentRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
