package workers_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/workers"
)

type countingRebuilder struct {
	comments atomic.Int64
	reports  atomic.Int64
	err      error
}

func (r *countingRebuilder) RebuildCommentStats(context.Context) (*domain.CommentStats, error) {
	r.comments.Add(1)
	return &domain.CommentStats{}, r.err
}

func (r *countingRebuilder) RebuildReportStats(context.Context) (*domain.ReportStats, error) {
	r.reports.Add(1)
	return &domain.ReportStats{}, r.err
}

func TestSyncStatsWorkerRebuildsOnTick(t *testing.T) {
	rebuilder := &countingRebuilder{}
	worker := workers.NewSyncStatsWorker(rebuilder, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return rebuilder.comments.Load() >= 2 && rebuilder.reports.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

// A rebuild failure is retried on the next tick, not fatal.
func TestSyncStatsWorkerKeepsTickingOnFailure(t *testing.T) {
	rebuilder := &countingRebuilder{err: assert.AnError}
	worker := workers.NewSyncStatsWorker(rebuilder, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	assert.Eventually(t, func() bool {
		return rebuilder.comments.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}
