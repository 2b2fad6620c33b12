// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID uint) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update the caller's profile.
// Nil pointers leave the stored value untouched.
type UpdateProfileInput struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ChangePasswordInput defines the data required to change the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
