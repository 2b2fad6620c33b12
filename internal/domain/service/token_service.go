package service

import (
	"github.com/golang-jwt/jwt/v5"

	"bizconnect/internal/domain/entity"
)

// Claims defines the custom claims for the JWT access tokens.
// The payload carries {id, username, role}.
type Claims struct {
	UserID   uint        `json:"id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
