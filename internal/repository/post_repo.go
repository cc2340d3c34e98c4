package repository

import (
	"context"
	"errors"

	"Peakfuel/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetFeedPosts(ctx context.Context, gated bool, limit int, offset int) ([]model.Post, error)
	IncrementLikedCount(ctx context.Context, postID uint64, delta int) error
	IncrementCommentCount(ctx context.Context, postID uint64, delta int) error
	SyncCounts(ctx context.Context, postID uint64, likedCount int64, commentCount int64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreatePost persists the post together with its media and document rows.
// Associated rows ride on gorm's association create inside one transaction.
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Creator.UserRoles.Role").
		Preload("Tier").
		Preload("Meal").
		Preload("MealPlan").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Documents").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetFeedPosts returns one visibility bucket of the feed, newest first.
func (s *PostRepoImpl) GetFeedPosts(ctx context.Context, gated bool, limit int, offset int) ([]model.Post, error) {
	var posts []model.Post
	query := s.db.WithContext(ctx).
		Preload("Creator.UserRoles.Role").
		Preload("Tier").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
	if gated {
		query = query.Where("tier_id IS NOT NULL")
	} else {
		query = query.Where("tier_id IS NULL")
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) IncrementLikedCount(ctx context.Context, postID uint64, delta int) error {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID)
	if delta < 0 {
		// never drive the counter below zero
		query = query.Where("liked_count > 0")
	}
	return query.UpdateColumn("liked_count", gorm.Expr("liked_count + ?", delta)).Error
}

func (s *PostRepoImpl) IncrementCommentCount(ctx context.Context, postID uint64, delta int) error {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID)
	if delta < 0 {
		query = query.Where("comment_count > 0")
	}
	return query.UpdateColumn("comment_count", gorm.Expr("comment_count + ?", delta)).Error
}

// SyncCounts overwrites the denormalized counters with recomputed truth.
func (s *PostRepoImpl) SyncCounts(ctx context.Context, postID uint64, likedCount int64, commentCount int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).
		UpdateColumns(map[string]any{
			"liked_count":   likedCount,
			"comment_count": commentCount,
		}).Error
}
