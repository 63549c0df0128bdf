package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/tastebookhq/tastebook/domain"
)

const KeyReportBloom = "bloom:report:tuples"

// reportDedupFilter is a redis-bitmap bloom filter over (reporter,
// target) tuples. A negative answer lets report creation skip the
// duplicate lookup entirely; the unique index on the report table stays
// the authority for positives and false positives alike.
type reportDedupFilter struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.ReportDedupFilter = (*reportDedupFilter)(nil)

func NewReportDedupFilter(client *redis.Client, bitSize uint64) *reportDedupFilter {
	return &reportDedupFilter{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func (r *reportDedupFilter) Add(ctx context.Context, reporterID int64, target domain.ReportTarget) error {
	offsets := r.getOffset(reporterID, target)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.SetBit(ctx, KeyReportBloom, int64(offset), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *reportDedupFilter) MightExist(ctx context.Context, reporterID int64, target domain.ReportTarget) (bool, error) {
	offsets := r.getOffset(reporterID, target)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.GetBit(ctx, KeyReportBloom, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

// getOffset derives k=3 bit offsets for the tuple.
func (r *reportDedupFilter) getOffset(reporterID int64, target domain.ReportTarget) []uint64 {
	data := fmt.Appendf(nil, "%d:%s:%d", reporterID, target.Type, target.ID)
	offsets := make([]uint64, 3)

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}
