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

// CommentsHandler consumes CDC events from the comments table. Top-level
// comments move the post's comment counter, replies move the parent's reply
// counter; both mark their target dirty and notify the relevant author.
type CommentsHandler struct {
	postRepo         repository.PostRepo
	engagementRepo   repository.EngagementRepo
	notificationRepo mongo.NotificationRepo
}

func NewCommentsHandler(
	postRepo repository.PostRepo,
	engagementRepo repository.EngagementRepo,
	notificationRepo mongo.NotificationRepo,
) *CommentsHandler {
	return &CommentsHandler{
		postRepo:         postRepo,
		engagementRepo:   engagementRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *CommentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("comments consumer setup")
	return nil
}

func (s *CommentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("comments consumer cleanup")
	return nil
}

func (s *CommentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("comments consumer process batch error", "err", err)
		return err
	}
	return nil
}

func (s *CommentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "comments")
	if err != nil {
		return err
	}
	if canalMsg.Type != INSERT {
		return nil
	}

	row := canalMsg.Data[0]
	userID := StrToUint64(row["user_id"])
	postID := StrToUint64(row["post_id"])
	repliedTo := StrToUint64(row["replied_to"])

	if repliedTo == 0 {
		ExecAction(ctx, ActionParams{
			TargetID:       postID,
			CountKeyPrefix: consts.PostCommentKey,
			DirtyKey:       consts.PostDirtyKey,
			IsIncrement:    true,
			NotifyFunc:     func() { s.sendCommentNotification(ctx, userID, postID) },
		})
		log.InfoContext(ctx, "comment inserted", "userID", userID, "postID", postID)
		return nil
	}

	ExecAction(ctx, ActionParams{
		TargetID:       repliedTo,
		CountKeyPrefix: consts.CommentReplyKey,
		DirtyKey:       consts.CommentDirtyKey,
		IsIncrement:    true,
		NotifyFunc:     func() { s.sendReplyNotification(ctx, userID, repliedTo) },
	})
	log.InfoContext(ctx, "reply inserted", "userID", userID, "commentID", repliedTo)
	return nil
}

func (s *CommentsHandler) sendCommentNotification(ctx context.Context, senderID, postID uint64) {
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
		Type:       mongo.NotificationTypeComment,
		TargetID:   postID,
		Content:    "commented on your post",
		Payload: map[string]any{
			"post_title": post.Title,
		},
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create comment notification", "postID", postID, "err", err)
	}
}

func (s *CommentsHandler) sendReplyNotification(ctx context.Context, senderID, commentID uint64) {
	parent, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil || parent == nil {
		log.WarnContext(ctx, "failed to load comment for notification", "commentID", commentID)
		return
	}
	if parent.UserID == senderID {
		return
	}

	notification := &mongo.Notification{
		ReceiverID: parent.UserID,
		SenderID:   senderID,
		Type:       mongo.NotificationTypeReply,
		TargetID:   commentID,
		Content:    "replied to your comment",
		Payload: map[string]any{
			"post_id": parent.PostID,
		},
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create reply notification", "commentID", commentID, "err", err)
	}
}
