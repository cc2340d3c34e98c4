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

func newEngagementFixture() (EngagementService, *fakeEngagementRepo, *fakePostRepo, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	engagementRepo := newFakeEngagementRepo(userRepo)
	postRepo := newFakePostRepo()
	svc := NewEngagementService(engagementRepo, postRepo, userRepo)
	return svc, engagementRepo, postRepo, userRepo
}

func seedUser(userRepo *fakeUserRepo, id uint64, handle string) *model.User {
	return userRepo.add(&model.User{
		ID:     id,
		Handle: handle,
		UserRoles: []model.UserRole{
			{UserID: id, RoleID: 1, Role: model.Role{ID: 1, Name: model.RoleUser}},
		},
	})
}

func TestLikePostIdempotent(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "leg day"})

	ctx := context.Background()
	result, err := svc.LikePost(ctx, 1, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.LikedCount)
	assert.True(t, result.IsLiked)
	assert.Equal(t, 1, post.LikedCount)

	// a repeat like from the same user is absorbed
	result, err = svc.LikePost(ctx, 1, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.LikedCount)
	assert.Equal(t, 1, post.LikedCount)
}

func TestLikePostDistinctUsers(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	seedUser(userRepo, 2, "bob")
	post := postRepo.add(&model.Post{UserID: 1, Title: "meal prep"})

	ctx := context.Background()
	_, err := svc.LikePost(ctx, 1, post.ID)
	require.NoError(t, err)
	result, err := svc.LikePost(ctx, 2, post.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.LikedCount)
	assert.Equal(t, 2, post.LikedCount)
}

func TestLikePostNotFound(t *testing.T) {
	svc, _, _, _ := newEngagementFixture()

	_, err := svc.LikePost(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUnlikePost(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "cut week"})

	ctx := context.Background()
	_, err := svc.LikePost(ctx, 1, post.ID)
	require.NoError(t, err)

	result, err := svc.UnlikePost(ctx, 1, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.LikedCount)
	assert.False(t, result.IsLiked)
	assert.Equal(t, 0, post.LikedCount)
}

func TestUnlikeWithoutLikeIsNoOp(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "rest day", LikedCount: 3})

	result, err := svc.UnlikePost(context.Background(), 1, post.ID)
	require.NoError(t, err)

	// no like row existed, so the counter must not move
	assert.Equal(t, 3, post.LikedCount)
	assert.False(t, result.IsLiked)
}

func TestUnlikePostNotFound(t *testing.T) {
	svc, _, _, _ := newEngagementFixture()

	_, err := svc.UnlikePost(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreateTopLevelComment(t *testing.T) {
	svc, engagementRepo, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "pr attempt"})

	result, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID: post.ID,
		Body:   "huge lift",
	})
	require.NoError(t, err)

	assert.Equal(t, "huge lift", result.Body)
	assert.Equal(t, "alice", result.Handle)
	assert.Nil(t, result.RepliedTo)
	assert.Equal(t, 1, post.CommentCount)
	assert.Len(t, engagementRepo.comments, 1)
}

func TestCreateReplyDoesNotMovePostCounter(t *testing.T) {
	svc, engagementRepo, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	seedUser(userRepo, 2, "bob")
	post := postRepo.add(&model.Post{UserID: 1, Title: "form check"})

	parent, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID: post.ID,
		Body:   "elbows in",
	})
	require.NoError(t, err)
	require.Equal(t, 1, post.CommentCount)

	reply, err := svc.CreateComment(context.Background(), 2, &dto.CommentCreateDTO{
		PostID:    post.ID,
		Body:      "agreed",
		RepliedTo: util.PtrUint64(parent.ID),
	})
	require.NoError(t, err)

	// replies count against the parent, not the post
	assert.Equal(t, 1, post.CommentCount)
	assert.Equal(t, parent.ID, *reply.RepliedTo)
	assert.Equal(t, 1, engagementRepo.comments[parent.ID].ReplyCount)
}

func TestCreateReplyParentMismatchCreatesNothing(t *testing.T) {
	svc, engagementRepo, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	postA := postRepo.add(&model.Post{UserID: 1, Title: "post a"})
	postB := postRepo.add(&model.Post{UserID: 1, Title: "post b"})

	parent, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID: postA.ID,
		Body:   "on post a",
	})
	require.NoError(t, err)

	// the parent belongs to post a, replying through post b must fail
	_, err = svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID:    postB.ID,
		Body:      "wrong thread",
		RepliedTo: util.PtrUint64(parent.ID),
	})
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Len(t, engagementRepo.comments, 1)
	assert.Equal(t, 0, postB.CommentCount)
	assert.Equal(t, 0, engagementRepo.comments[parent.ID].ReplyCount)
}

func TestCreateReplyParentMissing(t *testing.T) {
	svc, engagementRepo, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "solo post"})

	_, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID:    post.ID,
		Body:      "reply to nothing",
		RepliedTo: util.PtrUint64(777),
	})
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Empty(t, engagementRepo.comments)
}

func TestGetCommentsTopLevelOnly(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	author := seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "bulk log"})

	first, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{PostID: post.ID, Body: "first"})
	require.NoError(t, err)
	_, err = svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID:    post.ID,
		Body:      "nested",
		RepliedTo: util.PtrUint64(first.ID),
	})
	require.NoError(t, err)
	_, err = svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{PostID: post.ID, Body: "second"})
	require.NoError(t, err)

	comments, err := svc.GetComments(context.Background(), post.ID, 0, 0)
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "second", comments[1].Body)
	assert.Equal(t, author.Handle, comments[0].Handle)
	assert.Equal(t, int64(1), comments[0].ReplyCount)
	assert.Equal(t, int64(0), comments[1].ReplyCount)
}

func TestGetRepliesIgnoresPostID(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "routine"})
	other := postRepo.add(&model.Post{UserID: 1, Title: "unrelated"})

	parent, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{PostID: post.ID, Body: "root"})
	require.NoError(t, err)
	_, err = svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{
		PostID:    post.ID,
		Body:      "child",
		RepliedTo: util.PtrUint64(parent.ID),
	})
	require.NoError(t, err)

	// replies are addressed by comment id; the post segment is not checked
	replies, err := svc.GetReplies(context.Background(), other.ID, parent.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "child", replies[0].Body)
}

func TestGetRepliesParentMissing(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "post"})

	_, err := svc.GetReplies(context.Background(), post.ID, 123, 0, 0)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestGetCommentsPagination(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "long thread"})

	for _, body := range []string{"a", "b", "c", "d"} {
		_, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{PostID: post.ID, Body: body})
		require.NoError(t, err)
	}

	comments, err := svc.GetComments(context.Background(), post.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "b", comments[0].Body)
	assert.Equal(t, "c", comments[1].Body)
}

func TestIsLikedAnonymous(t *testing.T) {
	svc, _, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "post"})

	liked, err := svc.IsLiked(context.Background(), 0, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestGetCommentsCountErrorPropagates(t *testing.T) {
	svc, engagementRepo, postRepo, userRepo := newEngagementFixture()
	seedUser(userRepo, 1, "alice")
	post := postRepo.add(&model.Post{UserID: 1, Title: "leg day"})

	_, err := svc.CreateComment(context.Background(), 1, &dto.CommentCreateDTO{PostID: post.ID, Body: "form check?"})
	require.NoError(t, err)

	engagementRepo.countErr = errors.New("connection refused")
	_, err = svc.GetComments(context.Background(), post.ID, 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, engagementRepo.countErr)
}
