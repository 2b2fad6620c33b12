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

func newProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewProfileService(userRepo, hasher, newDiscardLogger())

	return srv, userRepo, hasher
}

func TestProfileService_GetProfile(t *testing.T) {
	srv, userRepo, _ := newProfileService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 3, Username: "sari", Email: "sari@kampus.ac.id"}
	userRepo.On("FindByID", ctx, uint(3)).Return(storedUser, nil)

	user, err := srv.GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "sari", user.Username)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	srv, userRepo, _ := newProfileService(t)
	ctx := context.Background()

	userRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	user, err := srv.GetProfile(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_ChangesNameAndEmail(t *testing.T) {
	srv, userRepo, _ := newProfileService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 3, Username: "sari", Email: "sari@kampus.ac.id", FullName: "Sari"}
	userRepo.On("FindByID", ctx, uint(3)).Return(storedUser, nil)
	userRepo.On("FindByEmail", ctx, "sari.baru@kampus.ac.id").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	newName := "Sari Dewi"
	newEmail := "sari.baru@kampus.ac.id"
	user, err := srv.UpdateProfile(ctx, 3, &usecase.UpdateProfileInput{FullName: &newName, Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "Sari Dewi", user.FullName)
	assert.Equal(t, "sari.baru@kampus.ac.id", user.Email)
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	srv, userRepo, _ := newProfileService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 3, Email: "sari@kampus.ac.id"}
	other := &entity.User{ID: 8, Email: "budi@kampus.ac.id"}
	userRepo.On("FindByID", ctx, uint(3)).Return(storedUser, nil)
	userRepo.On("FindByEmail", ctx, "budi@kampus.ac.id").Return(other, nil)

	taken := "budi@kampus.ac.id"
	user, err := srv.UpdateProfile(ctx, 3, &usecase.UpdateProfileInput{Email: &taken})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_ChangePassword(t *testing.T) {
	srv, userRepo, hasher := newProfileService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 3, Password: "$2a$10$old"}
	userRepo.On("FindByID", ctx, uint(3)).Return(storedUser, nil)
	hasher.On("Check", "lama123", "$2a$10$old").Return(true)
	hasher.On("Hash", "baru456").Return("$2a$10$new", nil)
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Password == "$2a$10$new"
	})).Return(nil)

	err := srv.ChangePassword(ctx, 3, &usecase.ChangePasswordInput{
		CurrentPassword: "lama123",
		NewPassword:     "baru456",
	})
	require.NoError(t, err)
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	srv, userRepo, hasher := newProfileService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: 3, Password: "$2a$10$old"}
	userRepo.On("FindByID", ctx, uint(3)).Return(storedUser, nil)
	hasher.On("Check", "salah", "$2a$10$old").Return(false)

	err := srv.ChangePassword(ctx, 3, &usecase.ChangePasswordInput{
		CurrentPassword: "salah",
		NewPassword:     "baru456",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCurrentPasswordWrong))
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	srv, userRepo, _ := newProfileService(t)
	ctx := context.Background()

	userRepo.On("Delete", ctx, uint(3)).Return(nil)

	require.NoError(t, srv.DeleteAccount(ctx, 3))
}
