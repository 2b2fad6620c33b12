package middleware

import (
	"strings"

	"bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates JWT access tokens and exposes the caller's
// identity on the request context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		// Expose the caller on the echo context for handlers and on the
		// request context for the usecase layer.
		c.Set(string(context.KeyUserID), claims.UserID)
		c.Set(string(context.KeyUsername), claims.Username)
		c.Set(string(context.KeyRole), string(claims.Role))

		return next(c)
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if context.GetRole(c) != string(entity.RoleAdmin) {
			return domainerrors.ErrAdminOnly
		}

		return next(c)
	}
}
