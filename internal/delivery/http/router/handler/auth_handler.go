package handler

import (
	"log/slog"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	// Username accepts the username or the registered email.
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type registerRequest struct {
	FullName        string `json:"fullName" validate:"required,max=100"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"token": output.Token,
		"user":  output.User,
	}, "Login berhasil")
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output.User, "Registrasi berhasil")
}

// Verify confirms a bearer token is still valid and echoes its claims.
// The auth middleware has already rejected invalid tokens by the time this runs.
func (h *AuthHandler) Verify(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"id":       userID,
		"username": deliverycontext.GetUsername(c),
		"role":     deliverycontext.GetRole(c),
	}, "Token valid")
}
