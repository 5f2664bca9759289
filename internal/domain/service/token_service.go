package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	AccountID int64    `json:"aid"`
	Roles     []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the session token handed out after a chat login.
type TokenService interface {
	GenerateSessionToken(accountID int64, roles []string) (token string, expiresAt time.Time, err error)

	ValidateToken(tokenString string) (*Claims, error)
}
