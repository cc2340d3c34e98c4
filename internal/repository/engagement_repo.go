package repository

import (
	"context"
	"errors"

	"Peakfuel/internal/model"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type EngagementRepo interface {
	CreateLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, userID uint64, postID uint64) (bool, error)
	CheckLikeExists(ctx context.Context, userID uint64, postID uint64) (bool, error)
	CountLikes(ctx context.Context, postID uint64) (int64, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	GetRootComments(ctx context.Context, postID uint64, limit int, offset int) ([]model.Comment, error)
	GetReplies(ctx context.Context, commentID uint64, limit int, offset int) ([]model.Comment, error)
	CountRootComments(ctx context.Context, postID uint64) (int64, error)
	CountReplies(ctx context.Context, commentID uint64) (int64, error)
	IncrementReplyCount(ctx context.Context, commentID uint64, delta int) error
	SyncReplyCount(ctx context.Context, commentID uint64, count int64) error
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db: db}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// CreateLike inserts the like row. The (user_id, post_id) primary key makes
// repeat likes collide; a duplicate insert is absorbed and reported as false.
func (s *EngagementRepoImpl) CreateLike(ctx context.Context, like *model.Like) (bool, error) {
	err := s.db.WithContext(ctx).Create(like).Error
	if err != nil {
		if isDuplicateError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteLike removes the like row and reports whether a row actually existed.
func (s *EngagementRepoImpl) DeleteLike(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *EngagementRepoImpl) CheckLikeExists(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *EngagementRepoImpl) CountLikes(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *EngagementRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("Author.UserRoles.Role").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetRootComments pages top-level comments of a post, oldest first.
func (s *EngagementRepoImpl) GetRootComments(ctx context.Context, postID uint64, limit int, offset int) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Preload("Author.UserRoles.Role").
		Where("post_id = ? AND replied_to IS NULL", postID).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *EngagementRepoImpl) GetReplies(ctx context.Context, commentID uint64, limit int, offset int) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Preload("Author.UserRoles.Role").
		Where("replied_to = ?", commentID).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *EngagementRepoImpl) CountRootComments(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND replied_to IS NULL", postID).Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) CountReplies(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("replied_to = ?", commentID).Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) IncrementReplyCount(ctx context.Context, commentID uint64, delta int) error {
	query := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentID)
	if delta < 0 {
		query = query.Where("reply_count > 0")
	}
	return query.UpdateColumn("reply_count", gorm.Expr("reply_count + ?", delta)).Error
}

func (s *EngagementRepoImpl) SyncReplyCount(ctx context.Context, commentID uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentID).
		UpdateColumn("reply_count", count).Error
}
