package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentUsecase) FetchByRecipe(ctx context.Context, recipeID int64, window domain.ListWindow) ([]domain.Comment, domain.PageInfo, error) {
	args := m.Called(ctx, recipeID, window)
	var res []domain.Comment
	if v := args.Get(0); v != nil {
		res = v.([]domain.Comment)
	}
	return res, args.Get(1).(domain.PageInfo), args.Error(2)
}

type ReportUsecase struct {
	mock.Mock
}

func (m *ReportUsecase) Create(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReportUsecase) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	args := m.Called(ctx, id)
	var r *domain.Report
	if v := args.Get(0); v != nil {
		r = v.(*domain.Report)
	}
	return r, args.Error(1)
}

func (m *ReportUsecase) Fetch(ctx context.Context, filter domain.ReportFilter, window domain.ListWindow) ([]domain.Report, domain.PageInfo, error) {
	args := m.Called(ctx, filter, window)
	var res []domain.Report
	if v := args.Get(0); v != nil {
		res = v.([]domain.Report)
	}
	return res, args.Get(1).(domain.PageInfo), args.Error(2)
}

func (m *ReportUsecase) Resolve(ctx context.Context, id int64, actor domain.Actor, req domain.ResolutionRequest) (*domain.Report, error) {
	args := m.Called(ctx, id, actor, req)
	var r *domain.Report
	if v := args.Get(0); v != nil {
		r = v.(*domain.Report)
	}
	return r, args.Error(1)
}

func (m *ReportUsecase) Reject(ctx context.Context, id int64, actor domain.Actor, note string) (*domain.Report, error) {
	args := m.Called(ctx, id, actor, note)
	var r *domain.Report
	if v := args.Get(0); v != nil {
		r = v.(*domain.Report)
	}
	return r, args.Error(1)
}

func (m *ReportUsecase) Stats(ctx context.Context) (*domain.ReportStats, error) {
	args := m.Called(ctx)
	var res *domain.ReportStats
	if v := args.Get(0); v != nil {
		res = v.(*domain.ReportStats)
	}
	return res, args.Error(1)
}
