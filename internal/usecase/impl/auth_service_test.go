package impl

import (
	"context"
	"testing"

	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	mockRepo "bizconnect/internal/mocks/repository"
	mockSvc "bizconnect/internal/mocks/service"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return srv, userRepo, hasher, tokenService
}

func TestAuthService_Login_ByUsername(t *testing.T) {
	srv, userRepo, hasher, tokenService := newAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{
		ID:       7,
		Username: "budi",
		Email:    "budi@kampus.ac.id",
		Password: "$2a$10$hash",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}

	userRepo.On("FindByUsernameOrEmail", ctx, "budi").Return(storedUser, nil)
	hasher.On("Check", "rahasia123", storedUser.Password).Return(true)
	tokenService.On("GenerateToken", storedUser).Return("signed-token", nil)
	userRepo.On("UpdateLastLogin", ctx, uint(7)).Return(nil)

	output, err := srv.Login(ctx, &usecase.LoginInput{Identifier: "budi", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	// The token role always mirrors the stored account role.
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv, userRepo, hasher, _ := newAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 7, Username: "budi", Password: "$2a$10$hash", IsActive: true}

	userRepo.On("FindByUsernameOrEmail", ctx, "budi").Return(storedUser, nil)
	hasher.On("Check", "salah", storedUser.Password).Return(false)

	output, err := srv.Login(ctx, &usecase.LoginInput{Identifier: "budi", Password: "salah"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	srv, userRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.On("FindByUsernameOrEmail", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := srv.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "apapun"})
	require.Error(t, err)
	// Unknown account and wrong password must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	srv, userRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 9, Username: "nonaktif", Password: "$2a$10$hash", IsActive: false}

	userRepo.On("FindByUsernameOrEmail", ctx, "nonaktif").Return(storedUser, nil)

	_, err := srv.Login(ctx, &usecase.LoginInput{Identifier: "nonaktif", Password: "rahasia123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_LastLoginFailureIsNotFatal(t *testing.T) {
	srv, userRepo, hasher, tokenService := newAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 7, Username: "budi", Password: "$2a$10$hash", Role: entity.RoleUser, IsActive: true}

	userRepo.On("FindByUsernameOrEmail", ctx, "budi").Return(storedUser, nil)
	hasher.On("Check", "rahasia123", storedUser.Password).Return(true)
	tokenService.On("GenerateToken", storedUser).Return("signed-token", nil)
	userRepo.On("UpdateLastLogin", ctx, uint(7)).Return(errors.New("replica lag"))

	output, err := srv.Login(ctx, &usecase.LoginInput{Identifier: "budi", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, userRepo, hasher, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "sari").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByEmail", ctx, "sari@kampus.ac.id").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "rahasia123").Return("$2a$10$hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 11
	}).Return(nil)

	output, err := srv.Register(ctx, &usecase.RegisterInput{
		FullName:        "Sari Dewi",
		Username:        "sari",
		Email:           "sari@kampus.ac.id",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), output.User.ID)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.True(t, output.User.IsActive)
	assert.Equal(t, "$2a$10$hashed", output.User.Password)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	srv, _, _, _ := newAuthService(t)

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Username:        "sari",
		Email:           "sari@kampus.ac.id",
		Password:        "rahasia123",
		ConfirmPassword: "beda456",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	srv, userRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "sari").Return(&entity.User{ID: 3, Username: "sari"}, nil)

	_, err := srv.Register(ctx, &usecase.RegisterInput{
		Username:        "sari",
		Email:           "lain@kampus.ac.id",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	// Nothing may be inserted on a rejected registration.
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	srv, userRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "baru").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByEmail", ctx, "sari@kampus.ac.id").Return(&entity.User{ID: 3}, nil)

	_, err := srv.Register(ctx, &usecase.RegisterInput{
		Username:        "baru",
		Email:           "sari@kampus.ac.id",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
