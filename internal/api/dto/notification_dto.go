package dto

type NotificationDTO struct {
	ID        string `json:"id"`
	Type      int    `json:"type"`
	SenderID  uint64 `json:"sender_id"`
	PostID    uint64 `json:"post_id"`
	CommentID uint64 `json:"comment_id,omitempty"`
	Content   string `json:"content"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type NotificationListReq struct {
	Limit int `form:"limit"`
	Skip  int `form:"skip"`
}

type NotificationReadReq struct {
	ID string `json:"id" binding:"required"`
}

type UnreadCountDTO struct {
	Count int64 `json:"count"`
}
