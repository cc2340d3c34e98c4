package model

import (
	"time"
)

type PostDocument struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	PostID      uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	DocumentURL string    `gorm:"type:varchar(512);not null" json:"document_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PostDocument) TableName() string {
	return "post_documents"
}
