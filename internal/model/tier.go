package model

import (
	"time"
)

// Tier marks a paid subscription level. A post referencing a tier is gated;
// a post with no tier is free.
type Tier struct {
	ID          uint64  `gorm:"primaryKey"`
	CreatorID   uint64  `gorm:"not null;index:idx_creator_id"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description *string `gorm:"type:varchar(500)"`
	PriceCents  int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

func (Tier) TableName() string {
	return "tiers"
}
