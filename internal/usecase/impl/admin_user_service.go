// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/domain/service"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
)

// adminUserService implements the AdminUserUsecase interface.
type adminUserService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAdminUserService is the constructor for adminUserService.
func NewAdminUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AdminUserUsecase {
	return &adminUserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (srv *adminUserService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account, newest first.
func (srv *adminUserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser creates an account on behalf of an administrator.
func (srv *adminUserService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Admin creating user", slog.String("username", input.Username))

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Role tidak dikenal"),
			"invalid role",
		)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		FullName: input.FullName,
		Role:     role,
		IsActive: input.IsActive,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	return newUser, nil
}

// UpdateUser applies the non-nil fields to an existing account. A non-nil
// password is re-hashed before storage.
func (srv *adminUserService) UpdateUser(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Admin updating user", slog.Any("userID", id))

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("Role tidak dikenal"),
				"invalid role",
			)
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
		}
		user.Password = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteUser removes an account.
func (srv *adminUserService) DeleteUser(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Admin deleting user", slog.Any("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
