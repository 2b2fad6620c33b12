// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required for an admin to create an account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     entity.Role
	IsActive bool
}

// UpdateUserInput defines the mutable fields of a managed account.
// Nil pointers leave the stored value untouched; a non-nil Password is
// re-hashed before storage.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	FullName *string
	Role     *entity.Role
	IsActive *bool
}

// AdminUserUsecase defines the interface for the admin user-management surface.
type AdminUserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
