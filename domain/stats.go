package domain

import (
	"context"
	"time"
)

// StatsCache caches the admin dashboard aggregates. Stats reads are the
// hottest admin path and tolerate short staleness, so they go through a
// TTL cache instead of hitting the store every time.
type StatsCache interface {
	GetCommentStats(ctx context.Context) (*CommentStats, error)
	SetCommentStats(ctx context.Context, s *CommentStats, ttl time.Duration) error

	GetReportStats(ctx context.Context) (*ReportStats, error)
	SetReportStats(ctx context.Context, s *ReportStats, ttl time.Duration) error
}

// StatsSource serves the dashboard aggregates, coordinating the store and
// the cache.
type StatsSource interface {
	CommentStats(ctx context.Context) (*CommentStats, error)
	ReportStats(ctx context.Context) (*ReportStats, error)
}