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
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates by username or email. Unknown accounts, inactive
// accounts and wrong passwords all surface the same credentials error so the
// response never reveals which part failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, account not found", slog.String("identifier", input.Identifier))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login failed, account inactive", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Check password after the lookup; bcrypt is CPU-bound.
	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	// Best effort: a failed stamp never blocks the login.
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to stamp last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// Register creates a new user account with the default role.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Password dan konfirmasi password tidak sama"),
			"password confirmation mismatch",
		)
	}

	if err := srv.checkAvailability(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		FullName: input.FullName,
		Role:     entity.RoleUser,
		IsActive: true,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// checkAvailability rejects usernames and emails already taken. The create
// also hits the unique constraints; this pre-check exists to return the
// precise Indonesian message for each collision.
func (srv *authService) checkAvailability(ctx context.Context, username, email string) error {
	if _, err := srv.userRepo.FindByUsername(ctx, username); err == nil {
		srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", username))

		return errors.Wrap(domainerrors.ErrUsernameTaken, "registration rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

		return errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}
