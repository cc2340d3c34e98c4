package model

import (
	"time"
)

type MealPlan struct {
	ID          uint64          `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Entries     []MealPlanEntry `gorm:"type:json;serializer:json" json:"entries"`
	CreatedAt   time.Time       `json:"created_at"`
}

type MealPlanEntry struct {
	Day    int    `json:"day"`
	MealID uint64 `json:"meal_id"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}
