package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Peakfuel/internal/model"
)

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByHandle(_ context.Context, handle string) (*model.User, error) {
	for _, u := range f.users {
		if u.Handle == handle {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = uint64(len(f.users) + 1)
	}
	f.users[user.ID] = user
	return user
}

type fakeRoleRepo struct {
	roles     map[string]*model.Role
	userRoles []model.UserRole
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles: map[string]*model.Role{
			model.RoleUser:    {ID: 1, Name: model.RoleUser},
			model.RoleCreator: {ID: 2, Name: model.RoleCreator},
			model.RoleAdmin:   {ID: 3, Name: model.RoleAdmin},
		},
	}
}

func (f *fakeRoleRepo) GetRoleByName(_ context.Context, name string) (*model.Role, error) {
	return f.roles[name], nil
}

func (f *fakeRoleRepo) AddUserRole(_ context.Context, userID uint64, roleID uint64) error {
	f.userRoles = append(f.userRoles, model.UserRole{UserID: userID, RoleID: roleID})
	return nil
}

type fakeTierRepo struct {
	tiers map[uint64]*model.Tier
}

func newFakeTierRepo() *fakeTierRepo {
	return &fakeTierRepo{tiers: make(map[uint64]*model.Tier)}
}

func (f *fakeTierRepo) CreateTier(_ context.Context, tier *model.Tier) error {
	tier.ID = uint64(len(f.tiers) + 1)
	f.tiers[tier.ID] = tier
	return nil
}

func (f *fakeTierRepo) GetTier(_ context.Context, id uint64) (*model.Tier, error) {
	return f.tiers[id], nil
}

func (f *fakeTierRepo) GetTiersByCreator(_ context.Context, creatorID uint64) ([]model.Tier, error) {
	var result []model.Tier
	for _, t := range f.tiers {
		if t.CreatorID == creatorID {
			result = append(result, *t)
		}
	}
	return result, nil
}

type fakeMealRepo struct {
	meals  map[uint64]*model.Meal
	plans  map[uint64]*model.MealPlan
	nextID uint64
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{
		meals: make(map[uint64]*model.Meal),
		plans: make(map[uint64]*model.MealPlan),
	}
}

func (f *fakeMealRepo) CreateMeal(_ context.Context, meal *model.Meal) error {
	f.nextID++
	meal.ID = f.nextID
	f.meals[meal.ID] = meal
	return nil
}

func (f *fakeMealRepo) GetMeal(_ context.Context, id uint64) (*model.Meal, error) {
	return f.meals[id], nil
}

func (f *fakeMealRepo) CreateMealPlan(_ context.Context, plan *model.MealPlan) error {
	f.nextID++
	plan.ID = f.nextID
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeMealRepo) GetMealPlan(_ context.Context, id uint64) (*model.MealPlan, error) {
	return f.plans[id], nil
}

func (f *fakeMealRepo) GetMealsByIDs(_ context.Context, ids []uint64) ([]model.Meal, error) {
	var result []model.Meal
	for _, id := range ids {
		if m, ok := f.meals[id]; ok {
			result = append(result, *m)
		}
	}
	return result, nil
}

type feedCall struct {
	gated  bool
	limit  int
	offset int
}

type fakePostRepo struct {
	mu        sync.Mutex
	posts     map[uint64]*model.Post
	nextID    uint64
	feedCalls []feedCall
	freeFeed  []model.Post
	gatedFeed []model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post)}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.nextID++
	post.ID = f.nextID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostRepo) GetFeedPosts(_ context.Context, gated bool, limit int, offset int) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedCalls = append(f.feedCalls, feedCall{gated: gated, limit: limit, offset: offset})
	if gated {
		return f.gatedFeed, nil
	}
	return f.freeFeed, nil
}

func (f *fakePostRepo) IncrementLikedCount(_ context.Context, postID uint64, delta int) error {
	post, ok := f.posts[postID]
	if !ok {
		return nil
	}
	if delta < 0 && post.LikedCount <= 0 {
		return nil
	}
	post.LikedCount += delta
	return nil
}

func (f *fakePostRepo) IncrementCommentCount(_ context.Context, postID uint64, delta int) error {
	post, ok := f.posts[postID]
	if !ok {
		return nil
	}
	if delta < 0 && post.CommentCount <= 0 {
		return nil
	}
	post.CommentCount += delta
	return nil
}

func (f *fakePostRepo) SyncCounts(_ context.Context, postID uint64, likedCount int64, commentCount int64) error {
	if post, ok := f.posts[postID]; ok {
		post.LikedCount = int(likedCount)
		post.CommentCount = int(commentCount)
	}
	return nil
}

func (f *fakePostRepo) add(post *model.Post) *model.Post {
	if post.ID == 0 {
		f.nextID++
		post.ID = f.nextID
	} else if post.ID > f.nextID {
		f.nextID = post.ID
	}
	f.posts[post.ID] = post
	return post
}

type fakeEngagementRepo struct {
	likes    map[string]model.Like
	comments map[uint64]*model.Comment
	nextID   uint64
	countErr error

	// emulates gorm's Author preload on comment queries
	users *fakeUserRepo
}

func newFakeEngagementRepo(users *fakeUserRepo) *fakeEngagementRepo {
	return &fakeEngagementRepo{
		likes:    make(map[string]model.Like),
		comments: make(map[uint64]*model.Comment),
		users:    users,
	}
}

func (f *fakeEngagementRepo) withAuthor(c model.Comment) model.Comment {
	if f.users != nil {
		if u := f.users.users[c.UserID]; u != nil {
			c.Author = *u
		}
	}
	return c
}

func likeKey(userID, postID uint64) string {
	return fmt.Sprintf("%d:%d", userID, postID)
}

func (f *fakeEngagementRepo) CreateLike(_ context.Context, like *model.Like) (bool, error) {
	key := likeKey(like.UserID, like.PostID)
	if _, ok := f.likes[key]; ok {
		return false, nil
	}
	f.likes[key] = *like
	return true, nil
}

func (f *fakeEngagementRepo) DeleteLike(_ context.Context, userID uint64, postID uint64) (bool, error) {
	key := likeKey(userID, postID)
	if _, ok := f.likes[key]; !ok {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeEngagementRepo) CheckLikeExists(_ context.Context, userID uint64, postID uint64) (bool, error) {
	_, ok := f.likes[likeKey(userID, postID)]
	return ok, nil
}

func (f *fakeEngagementRepo) CountLikes(_ context.Context, postID uint64) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, l := range f.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeEngagementRepo) GetCommentByID(_ context.Context, id uint64) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	withAuthor := f.withAuthor(*c)
	return &withAuthor, nil
}

func (f *fakeEngagementRepo) GetRootComments(_ context.Context, postID uint64, limit int, offset int) ([]model.Comment, error) {
	var result []model.Comment
	for id := uint64(1); id <= f.nextID; id++ {
		c, ok := f.comments[id]
		if !ok || c.PostID != postID || !c.TopLevel() {
			continue
		}
		result = append(result, f.withAuthor(*c))
	}
	return page(result, limit, offset), nil
}

func (f *fakeEngagementRepo) GetReplies(_ context.Context, commentID uint64, limit int, offset int) ([]model.Comment, error) {
	var result []model.Comment
	for id := uint64(1); id <= f.nextID; id++ {
		c, ok := f.comments[id]
		if !ok || c.RepliedTo == nil || *c.RepliedTo != commentID {
			continue
		}
		result = append(result, f.withAuthor(*c))
	}
	return page(result, limit, offset), nil
}

func page(comments []model.Comment, limit, offset int) []model.Comment {
	if offset >= len(comments) {
		return nil
	}
	comments = comments[offset:]
	if limit < len(comments) {
		comments = comments[:limit]
	}
	return comments
}

func (f *fakeEngagementRepo) CountRootComments(_ context.Context, postID uint64) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, c := range f.comments {
		if c.PostID == postID && c.TopLevel() {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) CountReplies(_ context.Context, commentID uint64) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, c := range f.comments {
		if c.RepliedTo != nil && *c.RepliedTo == commentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) IncrementReplyCount(_ context.Context, commentID uint64, delta int) error {
	c, ok := f.comments[commentID]
	if !ok {
		return nil
	}
	if delta < 0 && c.ReplyCount <= 0 {
		return nil
	}
	c.ReplyCount += delta
	return nil
}

func (f *fakeEngagementRepo) SyncReplyCount(_ context.Context, commentID uint64, count int64) error {
	if c, ok := f.comments[commentID]; ok {
		c.ReplyCount = int(count)
	}
	return nil
}
