package dto

// LikeActionReq toggles a like. Action 1 likes, 0 unlikes.
type LikeActionReq struct {
	Action *int `json:"action" binding:"required" validate:"oneof=0 1"`
}

// PostCountersDTO carries the fresh engagement counters after a like/unlike.
type PostCountersDTO struct {
	PostID       uint64 `json:"post_id"`
	LikedCount   int64  `json:"liked_count"`
	CommentCount int64  `json:"comment_count"`
	IsLiked      bool   `json:"is_liked"`
}

type CommentCreateDTO struct {
	PostID    uint64  `json:"post_id" binding:"required"`
	Body      string  `json:"body" binding:"required" validate:"min=1,max=2000"`
	RepliedTo *uint64 `json:"replied_to"` // nil creates a top-level comment
}

type CommentDTO struct {
	ID         uint64  `json:"id"`
	PostID     uint64  `json:"post_id"`
	Body       string  `json:"body"`
	RepliedTo  *uint64 `json:"replied_to,omitempty"`
	ReplyCount int64   `json:"reply_count"`
	CreatedAt  string  `json:"created_at"`

	// Author
	UserID    uint64  `json:"user_id"`
	Handle    string  `json:"handle"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      string  `json:"role"`
}
