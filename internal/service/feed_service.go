package service

import (
	"context"
	"time"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/repository"

	"golang.org/x/sync/errgroup"
)

type FeedService interface {
	GetFeed(ctx context.Context, viewerID uint64, limit, skip int) ([]*dto.FeedEntryDTO, error)
}

type feedServiceImpl struct {
	postRepo          repository.PostRepo
	engagementService EngagementService
}

func NewFeedService(postRepo repository.PostRepo, engagementService EngagementService) FeedService {
	return &feedServiceImpl{
		postRepo:          postRepo,
		engagementService: engagementService,
	}
}

// GetFeed assembles the home feed: the free and gated buckets are queried
// independently with a rounded-up half of the page each, then concatenated
// free first. The output is identical for anonymous and signed-in viewers.
func (s *feedServiceImpl) GetFeed(ctx context.Context, viewerID uint64, limit, skip int) ([]*dto.FeedEntryDTO, error) {
	_ = viewerID
	if limit <= 0 {
		limit = consts.DefaultFeedLimit
	}
	if skip < 0 {
		skip = 0
	}
	half := limit/2 + limit%2
	halfSkip := skip/2 + skip%2

	var freePosts, gatedPosts []model.Post
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		freePosts, err = s.postRepo.GetFeedPosts(groupCtx, false, half, halfSkip)
		return err
	})
	group.Go(func() error {
		var err error
		gatedPosts, err = s.postRepo.GetFeedPosts(groupCtx, true, half, halfSkip)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	entries := make([]*dto.FeedEntryDTO, 0, len(freePosts)+len(gatedPosts))
	for i := range freePosts {
		entry, err := s.toFeedEntry(ctx, &freePosts[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	for i := range gatedPosts {
		entry, err := s.toFeedEntry(ctx, &gatedPosts[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *feedServiceImpl) toFeedEntry(ctx context.Context, post *model.Post) (*dto.FeedEntryDTO, error) {
	entry := &dto.FeedEntryDTO{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Type:        post.Type,
		AspectRatio: post.AspectRatio,
		Locked:      post.Gated(),
		CreatedAt:   post.CreatedAt.Format(time.RFC3339),
		Media:       toMediaDTOs(post.Media),
		Documents:   toDocumentDTOs(post.Documents),

		UserID:    post.Creator.ID,
		Handle:    post.Creator.Handle,
		AvatarURL: post.Creator.AvatarURL,
		Role:      post.Creator.DisplayRole(),
	}
	var err error
	if entry.LikedCount, err = s.engagementService.GetPostLikeCount(ctx, post.ID); err != nil {
		return nil, err
	}
	if entry.CommentCount, err = s.engagementService.GetPostCommentCount(ctx, post.ID); err != nil {
		return nil, err
	}
	return entry, nil
}

func toMediaDTOs(media []model.PostMedia) []dto.MediaDTO {
	result := make([]dto.MediaDTO, 0, len(media))
	for _, m := range media {
		result = append(result, dto.MediaDTO{
			MediaURL:  m.MediaURL,
			MimeType:  m.FileType,
			Width:     m.Width,
			Height:    m.Height,
			SortOrder: m.SortOrder,
		})
	}
	return result
}

func toDocumentDTOs(documents []model.PostDocument) []dto.DocumentDTO {
	result := make([]dto.DocumentDTO, 0, len(documents))
	for _, d := range documents {
		result = append(result, dto.DocumentDTO{
			Title:       d.Title,
			DocumentURL: d.DocumentURL,
		})
	}
	return result
}
