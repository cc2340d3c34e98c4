package model

import (
	"time"
)

// Like is keyed on (user_id, post_id); the composite primary key is the
// at-most-one-like-per-user-per-post constraint.
type Like struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
