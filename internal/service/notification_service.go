package service

import (
	"context"
	"time"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/mongo"
)

type NotificationService interface {
	List(ctx context.Context, userID uint64, limit, skip int) ([]*dto.NotificationDTO, error)
	UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadCountDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
}

type notificationServiceImpl struct {
	repo mongo.NotificationRepo
}

func NewNotificationService(repo mongo.NotificationRepo) NotificationService {
	return &notificationServiceImpl{repo: repo}
}

func (s *notificationServiceImpl) List(ctx context.Context, userID uint64, limit, skip int) ([]*dto.NotificationDTO, error) {
	if limit <= 0 {
		limit = consts.DefaultCommentLimit
	}
	if skip < 0 {
		skip = 0
	}
	items, err := s.repo.List(ctx, userID, int64(limit), int64(skip))
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NotificationDTO, 0, len(items))
	for _, n := range items {
		item := &dto.NotificationDTO{
			ID:        n.ID.Hex(),
			Type:      int(n.Type),
			SenderID:  n.SenderID,
			Content:   n.Content,
			Read:      n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
		switch n.Type {
		case mongo.NotificationTypeLike, mongo.NotificationTypeComment:
			item.PostID = n.TargetID
		case mongo.NotificationTypeReply:
			item.CommentID = n.TargetID
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadCountDTO, error) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountDTO{Count: count}, nil
}

func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, notificationID string) error {
	return s.repo.MarkAsRead(ctx, userID, notificationID)
}

func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
