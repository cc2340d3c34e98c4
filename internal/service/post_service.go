package service

import (
	"context"
	log "log/slog"
	"strings"
	"time"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/media"
	"Peakfuel/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo          repository.PostRepo
	mealRepo          repository.MealRepo
	tierRepo          repository.TierRepo
	engagementService EngagementService
}

func NewPostService(
	postRepo repository.PostRepo,
	mealRepo repository.MealRepo,
	tierRepo repository.TierRepo,
	engagementService EngagementService,
) PostService {
	return &postServiceImpl{
		postRepo:          postRepo,
		mealRepo:          mealRepo,
		tierRepo:          tierRepo,
		engagementService: engagementService,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if req.TierID != nil {
		tier, err := s.tierRepo.GetTier(ctx, *req.TierID)
		if err != nil {
			return nil, err
		}
		if tier == nil {
			return nil, ErrTierNotFound
		}
		if tier.CreatorID != userID {
			return nil, ErrTierNotOwned
		}
	}

	for _, m := range req.Media {
		if !strings.HasPrefix(m.MimeType, consts.MimePrefixImage) &&
			!strings.HasPrefix(m.MimeType, consts.MimePrefixVideo) {
			return nil, ErrFileNotSupported
		}
	}

	post := &model.Post{
		UserID:      userID,
		TierID:      req.TierID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		AspectRatio: s.classifyAspect(ctx, req.Media),
	}

	switch req.Type {
	case model.PostTypeMeal:
		if req.Meal == nil {
			return nil, ErrParamInvalid
		}
		meal := &model.Meal{
			Title:       req.Meal.Title,
			Calories:    req.Meal.Calories,
			Ingredients: req.Meal.Ingredients,
			Steps:       req.Meal.Steps,
			CreatedAt:   time.Now(),
		}
		if err := s.mealRepo.CreateMeal(ctx, meal); err != nil {
			return nil, err
		}
		post.MealID = &meal.ID
		post.Meal = meal
	case model.PostTypeMealPlan:
		if req.MealPlan == nil {
			return nil, ErrParamInvalid
		}
		plan, err := s.buildMealPlan(ctx, req.MealPlan)
		if err != nil {
			return nil, err
		}
		post.MealPlanID = &plan.ID
		post.MealPlan = plan
	}

	for i, m := range req.Media {
		post.Media = append(post.Media, model.PostMedia{
			FileType:  m.MimeType,
			MediaURL:  m.MediaURL,
			Width:     m.Width,
			Height:    m.Height,
			SortOrder: int8(i),
		})
	}
	for _, d := range req.Documents {
		post.Documents = append(post.Documents, model.PostDocument{
			Title:       d.Title,
			DocumentURL: d.DocumentURL,
		})
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	fresh, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, UnExpectedError
	}
	return s.toPostDTO(ctx, fresh, false)
}

func (s *postServiceImpl) buildMealPlan(ctx context.Context, req *dto.MealPlanBaseDTO) (*model.MealPlan, error) {
	ids := make([]uint64, 0, len(req.Entries))
	seen := make(map[uint64]bool, len(req.Entries))
	for _, e := range req.Entries {
		if !seen[e.MealID] {
			seen[e.MealID] = true
			ids = append(ids, e.MealID)
		}
	}
	meals, err := s.mealRepo.GetMealsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(meals) != len(ids) {
		return nil, ErrMealNotFound
	}

	plan := &model.MealPlan{
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	for _, e := range req.Entries {
		plan.Entries = append(plan.Entries, model.MealPlanEntry{Day: e.Day, MealID: e.MealID})
	}
	if err := s.mealRepo.CreateMealPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// classifyAspect derives the post's aspect ratio from its first media item,
// fetching the object when the upload did not report dimensions.
func (s *postServiceImpl) classifyAspect(ctx context.Context, items []dto.MediaBaseDTO) string {
	if len(items) == 0 {
		return model.AspectRatioSquare
	}
	first := items[0]
	if first.Width > 0 && first.Height > 0 {
		return media.Classify(first.Width, first.Height)
	}
	ratio, err := media.ClassifyRef(ctx, first.MediaURL)
	if err != nil {
		log.WarnContext(ctx, "aspect ratio probe failed", "media_url", first.MediaURL, "err", err)
		return model.AspectRatioSquare
	}
	return ratio
}

// GetPost returns the full detail view. A gated meal post viewed anonymously
// keeps its metadata but has the recipe body (ingredients, steps) redacted.
func (s *postServiceImpl) GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	redactMeal := post.Gated() && viewerID == 0 && post.Type == model.PostTypeMeal
	return s.toPostDTO(ctx, post, redactMeal)
}

func (s *postServiceImpl) toPostDTO(ctx context.Context, post *model.Post, redactMeal bool) (*dto.PostDTO, error) {
	result := &dto.PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Type:        post.Type,
		TierID:      post.TierID,
		AspectRatio: post.AspectRatio,
		CreatedAt:   post.CreatedAt.Format(time.RFC3339),
		Media:       toMediaDTOs(post.Media),
		Documents:   toDocumentDTOs(post.Documents),

		UserID:    post.Creator.ID,
		Handle:    post.Creator.Handle,
		AvatarURL: post.Creator.AvatarURL,
		Role:      post.Creator.DisplayRole(),
	}

	if post.Meal != nil {
		mealDTO := &dto.MealDTO{
			ID:          post.Meal.ID,
			Title:       post.Meal.Title,
			Calories:    post.Meal.Calories,
			Ingredients: post.Meal.Ingredients,
			Steps:       post.Meal.Steps,
		}
		if redactMeal {
			mealDTO.Ingredients = []string{}
			mealDTO.Steps = []string{}
		}
		result.Meal = mealDTO
	}
	if post.MealPlan != nil {
		planDTO := &dto.MealPlanDTO{
			ID:          post.MealPlan.ID,
			Title:       post.MealPlan.Title,
			Description: post.MealPlan.Description,
		}
		for _, e := range post.MealPlan.Entries {
			planDTO.Entries = append(planDTO.Entries, dto.MealPlanEntryDTO{Day: e.Day, MealID: e.MealID})
		}
		result.MealPlan = planDTO
	}

	var err error
	if result.LikedCount, err = s.engagementService.GetPostLikeCount(ctx, post.ID); err != nil {
		return nil, err
	}
	if result.CommentCount, err = s.engagementService.GetPostCommentCount(ctx, post.ID); err != nil {
		return nil, err
	}
	return result, nil
}
