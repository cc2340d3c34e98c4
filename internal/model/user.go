package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Handle    string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_handle"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password  string  `gorm:"type:varchar(255);not null" json:"-"`
	AvatarURL *string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// DisplayRole returns the most privileged role attached to the user,
// falling back to USER when no role rows are loaded.
func (s *User) DisplayRole() string {
	rank := map[string]int{RoleUser: 0, RoleCreator: 1, RoleAdmin: 2}
	best := RoleUser
	for _, ur := range s.UserRoles {
		if ur.Role.Name != "" && rank[ur.Role.Name] > rank[best] {
			best = ur.Role.Name
		}
	}
	return best
}
