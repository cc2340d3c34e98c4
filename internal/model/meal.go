package model

import (
	"time"
)

// StringList is stored as a JSON column.
type StringList []string

type Meal struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Calories    int        `gorm:"not null;default:0" json:"calories"`
	Ingredients StringList `gorm:"type:json;serializer:json" json:"ingredients"`
	Steps       StringList `gorm:"type:json;serializer:json" json:"steps"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Meal) TableName() string {
	return "meals"
}
