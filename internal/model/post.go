package model

import (
	"time"
)

const (
	PostTypeNormal   = "normal"
	PostTypeMeal     = "meal"
	PostTypeMealPlan = "meal_plan"
	PostTypeWorkout  = "workout"
)

const (
	AspectRatioSquare    = "square"
	AspectRatioLandscape = "landscape"
	AspectRatioPortrait  = "portrait"
)

type Post struct {
	ID           uint64  `gorm:"primaryKey"`
	UserID       uint64  `gorm:"not null;index:idx_user_id" json:"user_id"`
	TierID       *uint64 `gorm:"index:idx_tier_id" json:"tier_id"` // nil = free content
	Title        string  `gorm:"type:varchar(255);not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Type         string  `gorm:"type:varchar(20);not null;default:'normal'" json:"type"`
	MealID       *uint64 `json:"meal_id"`
	MealPlanID   *uint64 `json:"meal_plan_id"`
	LikedCount   int     `gorm:"not null;default:0" json:"liked_count"`
	CommentCount int     `gorm:"not null;default:0" json:"comment_count"`
	AspectRatio  string  `gorm:"type:varchar(20);not null;default:'square'" json:"aspect_ratio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Creator   User           `gorm:"foreignKey:UserID;references:ID"`
	Tier      *Tier          `gorm:"foreignKey:TierID;references:ID"`
	Meal      *Meal          `gorm:"foreignKey:MealID;references:ID"`
	MealPlan  *MealPlan      `gorm:"foreignKey:MealPlanID;references:ID"`
	Media     []PostMedia    `gorm:"foreignKey:PostID;references:ID"`
	Documents []PostDocument `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// Gated reports whether the post is restricted to a subscription tier.
func (s *Post) Gated() bool {
	return s.TierID != nil
}
