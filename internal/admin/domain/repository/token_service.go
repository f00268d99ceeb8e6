package repository

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims carried by an admin session token.
type Claims struct {
	Email     string `json:"email"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// TokenService generates and validates admin session tokens.
type TokenService interface {
	GenerateToken(ctx context.Context, email, sessionID string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
