package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/tastebookhq/tastebook/domain"
)

const statsWindow = 7 * 24 * time.Hour

// statsRepository coordinates the store and the cache for dashboard
// aggregates. Cache misses collapse into a single store scan via
// singleflight so a cold cache doesn't stampede the database.
type statsRepository struct {
	comments domain.CommentRepository
	reports  domain.ReportRepository
	cache    domain.StatsCache
	ttl      time.Duration
	group    singleflight.Group
}

var _ domain.StatsSource = (*statsRepository)(nil)

func NewStatsRepository(comments domain.CommentRepository, reports domain.ReportRepository, cache domain.StatsCache, ttl time.Duration) *statsRepository {
	return &statsRepository{
		comments: comments,
		reports:  reports,
		cache:    cache,
		ttl:      ttl,
	}
}

func (r *statsRepository) CommentStats(ctx context.Context) (*domain.CommentStats, error) {
	if stats, err := r.cache.GetCommentStats(ctx); err == nil {
		return stats, nil
	}

	res, err, _ := r.group.Do("comment_stats", func() (any, error) {
		return r.RebuildCommentStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.CommentStats), nil
}

// RebuildCommentStats recomputes comment stats from the store and warms
// the cache. Also called periodically by the stats sync worker.
func (r *statsRepository) RebuildCommentStats(ctx context.Context) (*domain.CommentStats, error) {
	byStatus, err := r.comments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	rated, err := r.comments.CountRated(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := r.comments.CountCreatedSince(ctx, time.Now().Add(-statsWindow))
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}
	stats := &domain.CommentStats{
		Total:    total,
		ByStatus: byStatus,
		Rated:    rated,
		Last7d:   recent,
	}

	if err := r.cache.SetCommentStats(ctx, stats, r.ttl); err != nil {
		logrus.Warnf("failed to cache comment stats: %v", err)
	}
	return stats, nil
}

func (r *statsRepository) ReportStats(ctx context.Context) (*domain.ReportStats, error) {
	if stats, err := r.cache.GetReportStats(ctx); err == nil {
		return stats, nil
	}

	res, err, _ := r.group.Do("report_stats", func() (any, error) {
		return r.RebuildReportStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.ReportStats), nil
}

// RebuildReportStats recomputes report stats from the store and warms the
// cache.
func (r *statsRepository) RebuildReportStats(ctx context.Context) (*domain.ReportStats, error) {
	byStatus, err := r.reports.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byTarget, err := r.reports.CountByTargetType(ctx)
	if err != nil {
		return nil, err
	}
	byReason, err := r.reports.CountByReason(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := r.reports.CountCreatedSince(ctx, time.Now().Add(-statsWindow))
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}
	stats := &domain.ReportStats{
		Total:        total,
		ByStatus:     byStatus,
		ByTargetType: byTarget,
		ByReason:     byReason,
		Last7d:       recent,
	}

	if err := r.cache.SetReportStats(ctx, stats, r.ttl); err != nil {
		logrus.Warnf("failed to cache report stats: %v", err)
	}
	return stats, nil
}
