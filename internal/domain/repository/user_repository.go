// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bizconnect/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsernameOrEmail retrieves a user whose username or email matches
	// the given identifier. Login accepts either.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves all users ordered by creation time descending.
	List(ctx context.Context) ([]entity.User, error)

	// Count returns the total number of user accounts.
	Count(ctx context.Context) (int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the user's last successful login time.
	UpdateLastLogin(ctx context.Context, id uint) error

	// Delete removes a user account.
	Delete(ctx context.Context, id uint) error
}
