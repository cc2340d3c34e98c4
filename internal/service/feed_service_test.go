package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedFixture() (FeedService, *fakePostRepo, *fakeEngagementRepo) {
	userRepo := newFakeUserRepo()
	engagementRepo := newFakeEngagementRepo(userRepo)
	postRepo := newFakePostRepo()
	engagementSvc := NewEngagementService(engagementRepo, postRepo, userRepo)
	return NewFeedService(postRepo, engagementSvc), postRepo, engagementRepo
}

func feedPost(id uint64, title string, tierID *uint64, creator model.User) model.Post {
	return model.Post{
		ID:        id,
		UserID:    creator.ID,
		TierID:    tierID,
		Title:     title,
		Type:      model.PostTypeNormal,
		CreatedAt: time.Now(),
		Creator:   creator,
	}
}

func TestGetFeedHalfSplit(t *testing.T) {
	tests := []struct {
		name         string
		limit        int
		skip         int
		wantHalf     int
		wantHalfSkip int
	}{
		{name: "even limit no skip", limit: 10, skip: 0, wantHalf: 5, wantHalfSkip: 0},
		{name: "odd limit rounds up", limit: 25, skip: 0, wantHalf: 13, wantHalfSkip: 0},
		{name: "odd skip rounds up", limit: 10, skip: 5, wantHalf: 5, wantHalfSkip: 3},
		{name: "default limit", limit: 0, skip: 0, wantHalf: 13, wantHalfSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, postRepo, _ := newFeedFixture()

			_, err := svc.GetFeed(context.Background(), 0, tt.limit, tt.skip)
			require.NoError(t, err)

			require.Len(t, postRepo.feedCalls, 2)
			gatedSeen := map[bool]bool{}
			for _, call := range postRepo.feedCalls {
				assert.Equal(t, tt.wantHalf, call.limit)
				assert.Equal(t, tt.wantHalfSkip, call.offset)
				gatedSeen[call.gated] = true
			}
			// one query per visibility bucket
			assert.True(t, gatedSeen[true])
			assert.True(t, gatedSeen[false])
		})
	}
}

func TestGetFeedFreeBeforeGated(t *testing.T) {
	svc, postRepo, _ := newFeedFixture()

	creator := model.User{
		ID:     7,
		Handle: "coach",
		UserRoles: []model.UserRole{
			{UserID: 7, RoleID: 2, Role: model.Role{ID: 2, Name: model.RoleCreator}},
		},
	}
	postRepo.freeFeed = []model.Post{
		feedPost(1, "free one", nil, creator),
		feedPost(2, "free two", nil, creator),
		feedPost(3, "free three", nil, creator),
	}
	postRepo.gatedFeed = []model.Post{
		feedPost(4, "gated one", util.PtrUint64(1), creator),
		feedPost(5, "gated two", util.PtrUint64(1), creator),
		feedPost(6, "gated three", util.PtrUint64(2), creator),
	}

	entries, err := svc.GetFeed(context.Background(), 0, 6, 0)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	// free bucket first, gated appended after, no re-sort
	for i, entry := range entries {
		if i < 3 {
			assert.False(t, entry.Locked, "entry %d", i)
		} else {
			assert.True(t, entry.Locked, "entry %d", i)
		}
	}
	assert.Equal(t, uint64(1), entries[0].ID)
	assert.Equal(t, uint64(4), entries[3].ID)

	// creator annotation is copied onto every entry
	for _, entry := range entries {
		assert.Equal(t, "coach", entry.Handle)
		assert.Equal(t, model.RoleCreator, entry.Role)
		assert.Equal(t, uint64(7), entry.UserID)
	}
}

func TestGetFeedCarriesEngagementCountsAndDocuments(t *testing.T) {
	svc, postRepo, engagementRepo := newFeedFixture()

	creator := model.User{ID: 3, Handle: "planner"}
	post := feedPost(1, "weekly plan", nil, creator)
	post.Documents = []model.PostDocument{
		{PostID: 1, Title: "grocery list", DocumentURL: "https://cdn.example.com/grocery.pdf"},
	}
	postRepo.freeFeed = []model.Post{post}

	engagementRepo.likes[likeKey(9, 1)] = model.Like{UserID: 9, PostID: 1}
	engagementRepo.likes[likeKey(10, 1)] = model.Like{UserID: 10, PostID: 1}
	engagementRepo.comments[1] = &model.Comment{ID: 1, PostID: 1, UserID: 9, Body: "looks great"}
	engagementRepo.comments[2] = &model.Comment{ID: 2, PostID: 1, UserID: 10, Body: "saved"}
	engagementRepo.nextID = 2

	entries, err := svc.GetFeed(context.Background(), 0, 4, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, int64(2), entries[0].LikedCount)
	assert.Equal(t, int64(2), entries[0].CommentCount)
	require.Len(t, entries[0].Documents, 1)
	assert.Equal(t, "grocery list", entries[0].Documents[0].Title)
}

func TestGetFeedCountErrorPropagates(t *testing.T) {
	svc, postRepo, engagementRepo := newFeedFixture()

	creator := model.User{ID: 1, Handle: "lifter"}
	postRepo.freeFeed = []model.Post{feedPost(1, "free", nil, creator)}
	engagementRepo.countErr = errors.New("connection refused")

	_, err := svc.GetFeed(context.Background(), 0, 4, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, engagementRepo.countErr)
}

func TestGetFeedSameForAnonymousAndAuthenticated(t *testing.T) {
	svc, postRepo, _ := newFeedFixture()

	creator := model.User{ID: 1, Handle: "lifter"}
	postRepo.freeFeed = []model.Post{feedPost(1, "free", nil, creator)}
	postRepo.gatedFeed = []model.Post{feedPost(2, "gated", util.PtrUint64(1), creator)}

	anonymous, err := svc.GetFeed(context.Background(), 0, 4, 0)
	require.NoError(t, err)
	authenticated, err := svc.GetFeed(context.Background(), 42, 4, 0)
	require.NoError(t, err)

	require.Equal(t, len(anonymous), len(authenticated))
	for i := range anonymous {
		assert.Equal(t, anonymous[i].ID, authenticated[i].ID)
		assert.Equal(t, anonymous[i].Locked, authenticated[i].Locked)
	}
}
