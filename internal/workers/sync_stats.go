package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tastebookhq/tastebook/domain"
)

// StatsRebuilder recomputes dashboard aggregates from the store and
// warms the cache.
type StatsRebuilder interface {
	RebuildCommentStats(ctx context.Context) (*domain.CommentStats, error)
	RebuildReportStats(ctx context.Context) (*domain.ReportStats, error)
}

// syncStatsWorker keeps the stats cache warm so admin dashboard loads
// rarely hit a cold cache. Rebuild failures are logged and retried on the
// next tick.
type syncStatsWorker struct {
	stats    StatsRebuilder
	interval time.Duration
}

func NewSyncStatsWorker(stats StatsRebuilder, interval time.Duration) *syncStatsWorker {
	return &syncStatsWorker{
		stats:    stats,
		interval: interval,
	}
}

func (s *syncStatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.stats.RebuildCommentStats(ctx); err != nil {
				logrus.Warnf("failed to rebuild comment stats: %v", err)
			}
			if _, err := s.stats.RebuildReportStats(ctx); err != nil {
				logrus.Warnf("failed to rebuild report stats: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down SyncStatsWorker")
			return
		}
	}
}
