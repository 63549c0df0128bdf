package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) Store(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	args := m.Called(ctx, id)
	var r *domain.Report
	if v := args.Get(0); v != nil {
		r = v.(*domain.Report)
	}
	return r, args.Error(1)
}

func (m *ReportRepository) ExistsForTarget(ctx context.Context, reporterID int64, target domain.ReportTarget) (bool, error) {
	args := m.Called(ctx, reporterID, target)
	return args.Bool(0), args.Error(1)
}

func (m *ReportRepository) Fetch(ctx context.Context, filter domain.ReportFilter, window domain.ListWindow) ([]domain.Report, domain.PageInfo, error) {
	args := m.Called(ctx, filter, window)
	var res []domain.Report
	if v := args.Get(0); v != nil {
		res = v.([]domain.Report)
	}
	return res, args.Get(1).(domain.PageInfo), args.Error(2)
}

func (m *ReportRepository) UpdateResolution(ctx context.Context, id int64, status domain.ReportStatus, res *domain.Resolution) error {
	args := m.Called(ctx, id, status, res)
	return args.Error(0)
}

func (m *ReportRepository) CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error) {
	args := m.Called(ctx)
	var res map[domain.ReportStatus]int64
	if v := args.Get(0); v != nil {
		res = v.(map[domain.ReportStatus]int64)
	}
	return res, args.Error(1)
}

func (m *ReportRepository) CountByTargetType(ctx context.Context) (map[domain.ReportTargetType]int64, error) {
	args := m.Called(ctx)
	var res map[domain.ReportTargetType]int64
	if v := args.Get(0); v != nil {
		res = v.(map[domain.ReportTargetType]int64)
	}
	return res, args.Error(1)
}

func (m *ReportRepository) CountByReason(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	var res map[string]int64
	if v := args.Get(0); v != nil {
		res = v.(map[string]int64)
	}
	return res, args.Error(1)
}

func (m *ReportRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
