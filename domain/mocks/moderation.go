package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type RatingUsecase struct {
	mock.Mock
}

func (m *RatingUsecase) Recompute(ctx context.Context, recipeID int64) (domain.RatingStats, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(domain.RatingStats), args.Error(1)
}

type ModerationUsecase struct {
	mock.Mock
}

func (m *ModerationUsecase) Fetch(ctx context.Context, filter domain.CommentFilter, window domain.ListWindow) ([]domain.Comment, domain.PageInfo, error) {
	args := m.Called(ctx, filter, window)
	var res []domain.Comment
	if v := args.Get(0); v != nil {
		res = v.([]domain.Comment)
	}
	return res, args.Get(1).(domain.PageInfo), args.Error(2)
}

func (m *ModerationUsecase) Approve(ctx context.Context, id int64, actor domain.Actor) (*domain.Comment, error) {
	args := m.Called(ctx, id, actor)
	var c *domain.Comment
	if v := args.Get(0); v != nil {
		c = v.(*domain.Comment)
	}
	return c, args.Error(1)
}

func (m *ModerationUsecase) Hide(ctx context.Context, id int64, actor domain.Actor, reason string) (*domain.Comment, error) {
	args := m.Called(ctx, id, actor, reason)
	var c *domain.Comment
	if v := args.Get(0); v != nil {
		c = v.(*domain.Comment)
	}
	return c, args.Error(1)
}

func (m *ModerationUsecase) Delete(ctx context.Context, id int64, actor *domain.Actor) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *ModerationUsecase) BulkModerate(ctx context.Context, ids []int64, action domain.ModerationAction, actor domain.Actor, reason string) (*domain.BulkResult, error) {
	args := m.Called(ctx, ids, action, actor, reason)
	var res *domain.BulkResult
	if v := args.Get(0); v != nil {
		res = v.(*domain.BulkResult)
	}
	return res, args.Error(1)
}

func (m *ModerationUsecase) Stats(ctx context.Context) (*domain.CommentStats, error) {
	args := m.Called(ctx)
	var res *domain.CommentStats
	if v := args.Get(0); v != nil {
		res = v.(*domain.CommentStats)
	}
	return res, args.Error(1)
}
