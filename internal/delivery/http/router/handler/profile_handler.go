package handler

import (
	"log/slog"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the caller's own account handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type updateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Me returns the caller's profile.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Profil ditemukan")
}

// Update modifies the caller's name or email.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Profil berhasil diperbarui")
}

// ChangePassword verifies the current password and stores a new hash.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password berhasil diubah")
}

// Delete removes the caller's account.
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Akun berhasil dihapus")
}
