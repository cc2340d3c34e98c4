package model

import (
	"time"
)

// Comment covers both top-level comments (RepliedTo nil) and replies.
// ReplyCount is only meaningful on top-level comments. A reply's parent must
// belong to the same post; the service layer enforces that on create.
type Comment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PostID     uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID     uint64    `gorm:"not null" json:"user_id"`
	Body       string    `gorm:"type:varchar(2000);not null" json:"body"`
	RepliedTo  *uint64   `gorm:"index:idx_replied_to" json:"replied_to"`
	ReplyCount int       `gorm:"not null;default:0" json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`

	Author User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}

// TopLevel reports whether the comment is attached directly to a post.
func (s *Comment) TopLevel() bool {
	return s.RepliedTo == nil
}
