package service

import (
	"context"
	"strconv"
	"time"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/redis"
	"Peakfuel/internal/repository"

	"github.com/jinzhu/copier"
)

const cacheExpiration = 7 * 24 * time.Hour

type EngagementService interface {
	LikePost(ctx context.Context, userID, postID uint64) (*dto.PostCountersDTO, error)
	UnlikePost(ctx context.Context, userID, postID uint64) (*dto.PostCountersDTO, error)
	IsLiked(ctx context.Context, userID, postID uint64) (bool, error)

	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, postID uint64, limit, skip int) ([]*dto.CommentDTO, error)
	GetReplies(ctx context.Context, postID, commentID uint64, limit, skip int) ([]*dto.CommentDTO, error)

	GetPostLikeCount(ctx context.Context, postID uint64) (int64, error)
	GetPostCommentCount(ctx context.Context, postID uint64) (int64, error)
	GetReplyCount(ctx context.Context, commentID uint64) (int64, error)
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	postRepo       repository.PostRepo
	userRepo       repository.UserRepo
}

func NewEngagementService(
	engagementRepo repository.EngagementRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		userRepo:       userRepo,
	}
}

func (s *engagementServiceImpl) checkPost(ctx context.Context, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}

// LikePost is idempotent: a repeat like from the same user is absorbed and the
// counter is only moved for a genuinely new like row.
func (s *engagementServiceImpl) LikePost(ctx context.Context, userID, postID uint64) (*dto.PostCountersDTO, error) {
	if err := s.checkPost(ctx, postID); err != nil {
		return nil, err
	}
	created, err := s.engagementRepo.CreateLike(ctx, &model.Like{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if created {
		if err := s.postRepo.IncrementLikedCount(ctx, postID, 1); err != nil {
			return nil, err
		}
		s.invalidateCounter(ctx, consts.PostLikeKey, postID)
	}
	return s.counters(ctx, postID, true)
}

func (s *engagementServiceImpl) UnlikePost(ctx context.Context, userID, postID uint64) (*dto.PostCountersDTO, error) {
	if err := s.checkPost(ctx, postID); err != nil {
		return nil, err
	}
	deleted, err := s.engagementRepo.DeleteLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if deleted {
		if err := s.postRepo.IncrementLikedCount(ctx, postID, -1); err != nil {
			return nil, err
		}
		s.invalidateCounter(ctx, consts.PostLikeKey, postID)
	}
	return s.counters(ctx, postID, false)
}

func (s *engagementServiceImpl) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.engagementRepo.CheckLikeExists(ctx, userID, postID)
}

func (s *engagementServiceImpl) counters(ctx context.Context, postID uint64, isLiked bool) (*dto.PostCountersDTO, error) {
	likeCount, err := s.GetPostLikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.GetPostCommentCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.PostCountersDTO{
		PostID:       postID,
		LikedCount:   likeCount,
		CommentCount: commentCount,
		IsLiked:      isLiked,
	}, nil
}

// CreateComment creates a top-level comment or a reply. A reply's parent must
// exist and belong to the same post, otherwise nothing is created.
func (s *engagementServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if err := s.checkPost(ctx, req.PostID); err != nil {
		return nil, err
	}

	if req.RepliedTo != nil {
		parent, err := s.engagementRepo.GetCommentByID(ctx, *req.RepliedTo)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != req.PostID {
			return nil, ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		PostID:    req.PostID,
		UserID:    userID,
		Body:      req.Body,
		RepliedTo: req.RepliedTo,
		CreatedAt: time.Now(),
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	// only top-level comments count against the post
	if comment.TopLevel() {
		if err := s.postRepo.IncrementCommentCount(ctx, req.PostID, 1); err != nil {
			return nil, err
		}
		s.invalidateCounter(ctx, consts.PostCommentKey, req.PostID)
	}

	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	result := s.toCommentDTO(comment, author)

	if !comment.TopLevel() {
		if err := s.engagementRepo.IncrementReplyCount(ctx, *req.RepliedTo, 1); err != nil {
			return nil, err
		}
		s.invalidateCounter(ctx, consts.CommentReplyKey, *req.RepliedTo)
	}
	return result, nil
}

// GetComments pages the top-level comments of a post, oldest first.
func (s *engagementServiceImpl) GetComments(ctx context.Context, postID uint64, limit, skip int) ([]*dto.CommentDTO, error) {
	if err := s.checkPost(ctx, postID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = consts.DefaultCommentLimit
	}
	if skip < 0 {
		skip = 0
	}
	comments, err := s.engagementRepo.GetRootComments(ctx, postID, limit, skip)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, comments)
}

// GetReplies pages the replies of a comment. The post id is part of the route
// but replies are addressed by comment id alone; comment ids are globally
// unique so the post id is not checked.
func (s *engagementServiceImpl) GetReplies(ctx context.Context, postID, commentID uint64, limit, skip int) ([]*dto.CommentDTO, error) {
	_ = postID
	parent, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrCommentNotFound
	}
	if limit <= 0 {
		limit = consts.DefaultCommentLimit
	}
	if skip < 0 {
		skip = 0
	}
	replies, err := s.engagementRepo.GetReplies(ctx, commentID, limit, skip)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, replies)
}

func (s *engagementServiceImpl) annotate(ctx context.Context, comments []model.Comment) ([]*dto.CommentDTO, error) {
	result := make([]*dto.CommentDTO, 0, len(comments))
	for i := range comments {
		item := s.toCommentDTO(&comments[i], &comments[i].Author)
		if comments[i].TopLevel() {
			count, err := s.GetReplyCount(ctx, comments[i].ID)
			if err != nil {
				return nil, err
			}
			item.ReplyCount = count
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *engagementServiceImpl) toCommentDTO(comment *model.Comment, author *model.User) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.CreatedAt = comment.CreatedAt.Format(time.RFC3339)
	item.UserID = author.ID
	item.Handle = author.Handle
	item.AvatarURL = author.AvatarURL
	item.Role = author.DisplayRole()
	return item
}

func (s *engagementServiceImpl) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostLikeKey, postID, func() (int64, error) {
		return s.engagementRepo.CountLikes(ctx, postID)
	})
}

func (s *engagementServiceImpl) GetPostCommentCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostCommentKey, postID, func() (int64, error) {
		return s.engagementRepo.CountRootComments(ctx, postID)
	})
}

func (s *engagementServiceImpl) GetReplyCount(ctx context.Context, commentID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.CommentReplyKey, commentID, func() (int64, error) {
		return s.engagementRepo.CountReplies(ctx, commentID)
	})
}

// cachedCount serves a counter from redis, falling back to the ledger table
// and writing the result back on a miss.
func (s *engagementServiceImpl) cachedCount(ctx context.Context, prefix string, id uint64, load func() (int64, error)) (int64, error) {
	key := prefix + strconv.FormatUint(id, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := load()
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

func (s *engagementServiceImpl) invalidateCounter(ctx context.Context, prefix string, id uint64) {
	_ = redis.DeleteKey(ctx, prefix+strconv.FormatUint(id, 10))
}
