package job

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/logger"
	"Peakfuel/internal/pkg/redis"
	"Peakfuel/internal/pkg/util"
	"Peakfuel/internal/repository"

	"github.com/google/uuid"
)

const counterCacheTTL = 7 * 24 * time.Hour

// PostCounterJob reconciles the denormalized post counters against the likes
// and comments ledger tables for every post marked dirty since the last run.
type PostCounterJob struct {
	postRepo       repository.PostRepo
	engagementRepo repository.EngagementRepo
}

func NewPostCounterJob(postRepo repository.PostRepo, engagementRepo repository.EngagementRepo) *PostCounterJob {
	return &PostCounterJob{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *PostCounterJob) Run() {
	traceID := "job-post-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.PostDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.PostDirtyKey, processingKey); err != nil {
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get post dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUint64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert post dirty set error", "err", err)
		return
	}

	log.InfoContext(ctx, "start syncing post counters", "count", len(postIDs))

	successCount := 0
	for _, postID := range postIDs {
		likedCount, err := s.engagementRepo.CountLikes(ctx, postID)
		if err != nil {
			log.ErrorContext(ctx, "count likes error", "postID", postID, "err", err)
			continue
		}
		commentCount, err := s.engagementRepo.CountRootComments(ctx, postID)
		if err != nil {
			log.ErrorContext(ctx, "count comments error", "postID", postID, "err", err)
			continue
		}
		if err := s.postRepo.SyncCounts(ctx, postID, likedCount, commentCount); err != nil {
			log.ErrorContext(ctx, "sync post counters error", "postID", postID, "err", err)
			continue
		}

		id := strconv.FormatUint(postID, 10)
		_ = redis.SetWithExpiration(ctx, consts.PostLikeKey+id, likedCount, counterCacheTTL)
		_ = redis.SetWithExpiration(ctx, consts.PostCommentKey+id, commentCount, counterCacheTTL)
		successCount++
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete post processing set error", "err", err)
	}

	log.InfoContext(ctx, "post counter sync done",
		"total_count", len(postIDs),
		"success_count", successCount)
}
