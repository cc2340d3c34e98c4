package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Peakfuel"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims is the business payload carried inside the token.
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
