package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type StatsSource struct {
	mock.Mock
}

func (m *StatsSource) CommentStats(ctx context.Context) (*domain.CommentStats, error) {
	args := m.Called(ctx)
	var res *domain.CommentStats
	if v := args.Get(0); v != nil {
		res = v.(*domain.CommentStats)
	}
	return res, args.Error(1)
}

func (m *StatsSource) ReportStats(ctx context.Context) (*domain.ReportStats, error) {
	args := m.Called(ctx)
	var res *domain.ReportStats
	if v := args.Get(0); v != nil {
		res = v.(*domain.ReportStats)
	}
	return res, args.Error(1)
}

type ReportDedupFilter struct {
	mock.Mock
}

func (m *ReportDedupFilter) Add(ctx context.Context, reporterID int64, target domain.ReportTarget) error {
	args := m.Called(ctx, reporterID, target)
	return args.Error(0)
}

func (m *ReportDedupFilter) MightExist(ctx context.Context, reporterID int64, target domain.ReportTarget) (bool, error) {
	args := m.Called(ctx, reporterID, target)
	return args.Bool(0), args.Error(1)
}
