// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
// Identifier accepts either the username or the registered email.
type LoginInput struct {
	Identifier string
	Password   string
	RememberMe bool
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
