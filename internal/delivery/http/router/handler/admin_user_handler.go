package handler

import (
	"log/slog"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/domain/entity"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminUserHandler serves the admin account-management endpoints.
type AdminUserHandler struct {
	uc     usecase.AdminUserUsecase
	logger *slog.Logger
}

// NewAdminUserHandler is the constructor for AdminUserHandler, injected by Fx.
func NewAdminUserHandler(uc usecase.AdminUserUsecase, logger *slog.Logger) *AdminUserHandler {
	return &AdminUserHandler{uc: uc, logger: logger}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive *bool  `json:"isActive"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"isActive"`
}

// List returns every account.
func (h *AdminUserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, users, "Daftar pengguna")
}

// Create registers an account on behalf of an admin.
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     entity.Role(req.Role),
		IsActive: active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user, "Pengguna berhasil dibuat")
}

// Update modifies an account; a non-empty password is re-hashed.
func (h *AdminUserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Pengguna berhasil diperbarui")
}

// Delete removes an account.
func (h *AdminUserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Pengguna berhasil dihapus")
}
