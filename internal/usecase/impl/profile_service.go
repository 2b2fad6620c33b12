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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account.
func (srv *profileService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile updates the caller's full name and email.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Email != nil && *input.Email != user.Email {
		if existing, err := srv.userRepo.FindByEmail(ctx, *input.Email); err == nil && existing.ID != userID {
			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "profile update rejected")
		} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (srv *profileService) ChangePassword(ctx context.Context, userID uint, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.Password) {
		srv.log(ctx).Warn("Password change rejected, current password mismatch", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrCurrentPasswordWrong, "password change rejected")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}
	user.Password = hashedPassword

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to store new password", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Debug("Password changed", slog.Any("userID", userID))

	return nil
}

// DeleteAccount removes the caller's account.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uint) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}
