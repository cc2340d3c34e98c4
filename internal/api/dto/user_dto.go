package dto

import "time"

type RegisterDTO struct {
	Handle    string  `json:"handle" binding:"required" validate:"min=3,max=50"`
	Email     string  `json:"email" binding:"required" validate:"email"`
	Password  string  `json:"password" binding:"required" validate:"min=8,max=72"`
	Creator   bool    `json:"creator"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type LoginDTO struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	UserID    uint64     `json:"user_id"`
	Handle    string     `json:"handle"`
	Email     string     `json:"email,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
