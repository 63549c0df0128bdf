package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tastebookhq/tastebook/domain"
)

const (
	KeyCommentStats = "stats:comments"
	KeyReportStats  = "stats:reports"
)

type statsCache struct {
	client *redis.Client
}

var _ domain.StatsCache = (*statsCache)(nil)

func NewStatsCache(client *redis.Client) *statsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) GetCommentStats(ctx context.Context) (*domain.CommentStats, error) {
	raw, err := c.client.Get(ctx, KeyCommentStats).Result()
	if err != nil {
		return nil, err
	}
	var stats domain.CommentStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) SetCommentStats(ctx context.Context, s *domain.CommentStats, ttl time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyCommentStats, raw, ttl).Err()
}

func (c *statsCache) GetReportStats(ctx context.Context) (*domain.ReportStats, error) {
	raw, err := c.client.Get(ctx, KeyReportStats).Result()
	if err != nil {
		return nil, err
	}
	var stats domain.ReportStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) SetReportStats(ctx context.Context, s *domain.ReportStats, ttl time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyReportStats, raw, ttl).Err()
}
