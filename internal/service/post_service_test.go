package service

import (
	"context"
	"errors"
	"testing"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture() (PostService, *fakePostRepo, *fakeMealRepo, *fakeTierRepo, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	engagementRepo := newFakeEngagementRepo(userRepo)
	postRepo := newFakePostRepo()
	mealRepo := newFakeMealRepo()
	tierRepo := newFakeTierRepo()
	engagementSvc := NewEngagementService(engagementRepo, postRepo, userRepo)
	svc := NewPostService(postRepo, mealRepo, tierRepo, engagementSvc)
	return svc, postRepo, mealRepo, tierRepo, userRepo
}

func gatedMealPost(postRepo *fakePostRepo, creator model.User) *model.Post {
	meal := &model.Meal{
		ID:          1,
		Title:       "overnight oats",
		Calories:    420,
		Ingredients: model.StringList{"oats", "milk", "berries"},
		Steps:       model.StringList{"combine", "refrigerate"},
	}
	return postRepo.add(&model.Post{
		UserID:  creator.ID,
		TierID:  util.PtrUint64(1),
		Title:   "breakfast prep",
		Type:    model.PostTypeMeal,
		MealID:  util.PtrUint64(meal.ID),
		Meal:    meal,
		Creator: creator,
	})
}

func TestGetPostRedactsGatedMealForAnonymous(t *testing.T) {
	svc, postRepo, _, _, _ := newPostFixture()
	creator := model.User{ID: 1, Handle: "chef"}
	post := gatedMealPost(postRepo, creator)

	result, err := svc.GetPost(context.Background(), 0, post.ID)
	require.NoError(t, err)

	// metadata stays, the recipe body goes
	assert.Equal(t, "breakfast prep", result.Title)
	require.NotNil(t, result.Meal)
	assert.Equal(t, "overnight oats", result.Meal.Title)
	assert.Equal(t, 420, result.Meal.Calories)
	assert.Empty(t, result.Meal.Ingredients)
	assert.Empty(t, result.Meal.Steps)
	assert.NotNil(t, result.Meal.Ingredients)
}

func TestGetPostFullForAuthenticatedViewer(t *testing.T) {
	svc, postRepo, _, _, _ := newPostFixture()
	creator := model.User{ID: 1, Handle: "chef"}
	post := gatedMealPost(postRepo, creator)

	result, err := svc.GetPost(context.Background(), 99, post.ID)
	require.NoError(t, err)

	require.NotNil(t, result.Meal)
	assert.Equal(t, []string{"oats", "milk", "berries"}, result.Meal.Ingredients)
	assert.Equal(t, []string{"combine", "refrigerate"}, result.Meal.Steps)
}

func TestGetPostFreeMealVisibleToAnonymous(t *testing.T) {
	svc, postRepo, _, _, _ := newPostFixture()
	meal := &model.Meal{ID: 2, Title: "shake", Ingredients: model.StringList{"whey"}, Steps: model.StringList{"blend"}}
	post := postRepo.add(&model.Post{
		UserID: 1,
		Title:  "free recipe",
		Type:   model.PostTypeMeal,
		MealID: util.PtrUint64(meal.ID),
		Meal:   meal,
	})

	result, err := svc.GetPost(context.Background(), 0, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"whey"}, result.Meal.Ingredients)
}

func TestGetPostGatedNormalNotRedacted(t *testing.T) {
	svc, postRepo, _, _, _ := newPostFixture()
	post := postRepo.add(&model.Post{
		UserID:      1,
		TierID:      util.PtrUint64(1),
		Title:       "members update",
		Description: "full text",
		Type:        model.PostTypeNormal,
	})

	result, err := svc.GetPost(context.Background(), 0, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "full text", result.Description)
	assert.Nil(t, result.Meal)
}

func TestGetPostNotFound(t *testing.T) {
	svc, _, _, _, _ := newPostFixture()

	_, err := svc.GetPost(context.Background(), 0, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreatePostTierOwnership(t *testing.T) {
	svc, _, _, tierRepo, _ := newPostFixture()
	require.NoError(t, tierRepo.CreateTier(context.Background(), &model.Tier{CreatorID: 1, Name: "gold"}))

	_, err := svc.CreatePost(context.Background(), 2, &dto.PostBaseDTO{
		Title:  "stolen tier",
		Type:   model.PostTypeNormal,
		TierID: util.PtrUint64(1),
	})
	assert.ErrorIs(t, err, ErrTierNotOwned)

	_, err = svc.CreatePost(context.Background(), 1, &dto.PostBaseDTO{
		Title:  "missing tier",
		Type:   model.PostTypeNormal,
		TierID: util.PtrUint64(9),
	})
	assert.ErrorIs(t, err, ErrTierNotFound)
}

func TestCreatePostMealRequired(t *testing.T) {
	svc, _, _, _, _ := newPostFixture()

	_, err := svc.CreatePost(context.Background(), 1, &dto.PostBaseDTO{
		Title: "recipe without recipe",
		Type:  model.PostTypeMeal,
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestCreatePostRejectsUnsupportedMedia(t *testing.T) {
	svc, _, _, _, _ := newPostFixture()

	_, err := svc.CreatePost(context.Background(), 1, &dto.PostBaseDTO{
		Title: "weird attachment",
		Type:  model.PostTypeNormal,
		Media: []dto.MediaBaseDTO{
			{MediaURL: "http://cdn/app.exe", MimeType: "application/octet-stream"},
		},
	})
	assert.ErrorIs(t, err, ErrFileNotSupported)
}

func TestCreatePostClassifiesAspect(t *testing.T) {
	svc, postRepo, _, _, _ := newPostFixture()

	result, err := svc.CreatePost(context.Background(), 1, &dto.PostBaseDTO{
		Title: "gym pano",
		Type:  model.PostTypeNormal,
		Media: []dto.MediaBaseDTO{
			{MediaURL: "http://cdn/pano.jpg", MimeType: "image/jpeg", Width: 1920, Height: 1080},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.AspectRatioLandscape, result.AspectRatio)
	assert.Equal(t, model.AspectRatioLandscape, postRepo.posts[result.ID].AspectRatio)
}

func TestCreateMealPlanValidatesMealIDs(t *testing.T) {
	svc, _, mealRepo, _, _ := newPostFixture()
	require.NoError(t, mealRepo.CreateMeal(context.Background(), &model.Meal{Title: "chicken rice"}))

	_, err := svc.CreatePost(context.Background(), 1, &dto.PostBaseDTO{
		Title: "week one",
		Type:  model.PostTypeMealPlan,
		MealPlan: &dto.MealPlanBaseDTO{
			Title: "cut plan",
			Entries: []dto.MealPlanEntryDTO{
				{Day: 1, MealID: 1},
				{Day: 2, MealID: 99},
			},
		},
	})
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestGetPostCountErrorPropagates(t *testing.T) {
	userRepo := newFakeUserRepo()
	engagementRepo := newFakeEngagementRepo(userRepo)
	postRepo := newFakePostRepo()
	engagementSvc := NewEngagementService(engagementRepo, postRepo, userRepo)
	svc := NewPostService(postRepo, newFakeMealRepo(), newFakeTierRepo(), engagementSvc)

	post := postRepo.add(&model.Post{UserID: 1, Title: "free", Type: model.PostTypeNormal})
	engagementRepo.countErr = errors.New("connection refused")

	_, err := svc.GetPost(context.Background(), 0, post.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, engagementRepo.countErr)
}
