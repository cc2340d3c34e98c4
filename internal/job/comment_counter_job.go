package job

import (
	"context"
	log "log/slog"
	"strconv"

	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/logger"
	"Peakfuel/internal/pkg/redis"
	"Peakfuel/internal/pkg/util"
	"Peakfuel/internal/repository"

	"github.com/google/uuid"
)

// CommentCounterJob reconciles reply_count for every comment marked dirty.
type CommentCounterJob struct {
	engagementRepo repository.EngagementRepo
}

func NewCommentCounterJob(engagementRepo repository.EngagementRepo) *CommentCounterJob {
	return &CommentCounterJob{engagementRepo: engagementRepo}
}

func (s *CommentCounterJob) Run() {
	traceID := "job-comment-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.CommentDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.CommentDirtyKey, processingKey); err != nil {
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get comment dirty set error", "err", err)
		return
	}

	commentIDs, err := util.StrSliceToUint64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert comment dirty set error", "err", err)
		return
	}

	log.InfoContext(ctx, "start syncing reply counters", "count", len(commentIDs))

	successCount := 0
	for _, commentID := range commentIDs {
		replyCount, err := s.engagementRepo.CountReplies(ctx, commentID)
		if err != nil {
			log.ErrorContext(ctx, "count replies error", "commentID", commentID, "err", err)
			continue
		}
		if err := s.engagementRepo.SyncReplyCount(ctx, commentID, replyCount); err != nil {
			log.ErrorContext(ctx, "sync reply count error", "commentID", commentID, "err", err)
			continue
		}

		id := strconv.FormatUint(commentID, 10)
		_ = redis.SetWithExpiration(ctx, consts.CommentReplyKey+id, replyCount, counterCacheTTL)
		successCount++
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete comment processing set error", "err", err)
	}

	log.InfoContext(ctx, "reply counter sync done",
		"total_count", len(commentIDs),
		"success_count", successCount)
}
