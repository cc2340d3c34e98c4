package kafka

import (
	"context"
	log "log/slog"
	"time"

	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/mongo"
	"Peakfuel/internal/repository"

	"github.com/IBM/sarama"
)

// LikesHandler consumes CDC events from the likes table: it keeps the cached
// like counters warm, marks posts dirty for reconciliation, and writes like
// notifications off the request path.
type LikesHandler struct {
	postRepo         repository.PostRepo
	notificationRepo mongo.NotificationRepo
}

func NewLikesHandler(postRepo repository.PostRepo, notificationRepo mongo.NotificationRepo) *LikesHandler {
	return &LikesHandler{
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("likes consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("likes consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("likes consumer process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "likes")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *LikesHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	userID, postID := StrToUint64(row["user_id"]), StrToUint64(row["post_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostLikeKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    true,
		NotifyFunc:     func() { s.sendLikeNotification(ctx, userID, postID) },
	})

	log.InfoContext(ctx, "like inserted", "userID", userID, "postID", postID)
	return nil
}

func (s *LikesHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	postID := StrToUint64(msg.Data[0]["post_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostLikeKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "like removed", "postID", postID)
	return nil
}

func (s *LikesHandler) sendLikeNotification(ctx context.Context, senderID, postID uint64) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil || post == nil {
		log.WarnContext(ctx, "failed to load post for notification", "postID", postID)
		return
	}
	if post.UserID == senderID {
		return
	}

	notification := &mongo.Notification{
		ReceiverID: post.UserID,
		SenderID:   senderID,
		Type:       mongo.NotificationTypeLike,
		TargetID:   postID,
		Content:    "liked your post",
		Payload: map[string]any{
			"post_title": post.Title,
		},
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create like notification", "postID", postID, "err", err)
	}
}
