package response

import (
	"time"

	"textile-store/internal/data/entity"
)

// SessionStatusResponse echoes the identity carried by the session token.
type SessionStatusResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type AuthResponse struct {
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	Token      string          `json:"-"`
	ExpiresAt  time.Time       `json:"expires_at"`
}
