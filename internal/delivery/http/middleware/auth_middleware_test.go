package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/service"
	mockSvc "bizconnect/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *mockSvc.MockTokenService) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), mockSvc.NewMockTokenService(t)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	c, tokenSvc := newAuthContext(t, "")
	mw := NewAuthMiddleware(tokenSvc)

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	c, tokenSvc := newAuthContext(t, "Basic dXNlcjpwYXNz")
	mw := NewAuthMiddleware(tokenSvc)

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	c, tokenSvc := newAuthContext(t, "Bearer expired-token")
	tokenSvc.On("ValidateToken", "expired-token").Return(nil, errors.New("token is expired"))
	mw := NewAuthMiddleware(tokenSvc)

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	c, tokenSvc := newAuthContext(t, "Bearer good-token")
	tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID:   7,
		Username: "budi",
		Role:     entity.RoleAdmin,
	}, nil)
	mw := NewAuthMiddleware(tokenSvc)

	called := false
	err := mw.Authenticate(func(c echo.Context) error {
		called = true
		userID, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, uint(7), userID)
		assert.Equal(t, "budi", deliverycontext.GetUsername(c))
		assert.Equal(t, "admin", deliverycontext.GetRole(c))

		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireAdmin_RejectsUserRole(t *testing.T) {
	c, tokenSvc := newAuthContext(t, "")
	c.Set(string(deliverycontext.KeyRole), "user")
	mw := NewAuthMiddleware(tokenSvc)

	err := mw.RequireAdmin(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminOnly))
}

func TestAuthMiddleware_RequireAdmin_AllowsAdmin(t *testing.T) {
	c, tokenSvc := newAuthContext(t, "")
	c.Set(string(deliverycontext.KeyRole), "admin")
	mw := NewAuthMiddleware(tokenSvc)

	err := mw.RequireAdmin(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
}
