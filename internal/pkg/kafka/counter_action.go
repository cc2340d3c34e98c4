package kafka

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"Peakfuel/internal/pkg/redis"
)

const counterTTL = 7 * 24 * time.Hour

// ActionParams describes one counter movement derived from a CDC event.
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool
	NotifyFunc     func()
}

// ExecAction nudges the cached counter and marks the target dirty so the
// reconciliation job recomputes it from the ledger. The cached value is only
// adjusted when it already exists; a miss is left for the read path to fill.
func ExecAction(ctx context.Context, params ActionParams) {
	key := params.CountKeyPrefix + strconv.FormatUint(params.TargetID, 10)

	exists, err := redis.Exists(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "counter cache probe failed", "key", key, "err", err)
	} else if exists {
		delta := int64(1)
		if !params.IsIncrement {
			delta = -1
		}
		if err := redis.IncrBy(ctx, key, delta); err != nil {
			log.WarnContext(ctx, "counter cache adjust failed", "key", key, "err", err)
		}
		_ = redis.Expire(ctx, key, counterTTL)
	}

	if err := redis.SAdd(ctx, params.DirtyKey, strconv.FormatUint(params.TargetID, 10)); err != nil {
		log.WarnContext(ctx, "dirty set mark failed", "key", params.DirtyKey, "err", err)
	}

	if params.NotifyFunc != nil {
		params.NotifyFunc()
	}
}
