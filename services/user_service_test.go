package services

import (
	"testing"

	"gin-accounts/apperrors"
	"gin-accounts/dto"
	"gin-accounts/models"
	"gin-accounts/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserService(t *testing.T) (IUserService, repositories.IUserRepository, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	repository := repositories.NewUserRepository(db)
	passwords := NewPasswordService()

	hashed, err := passwords.Hash("longenough1")
	require.NoError(t, err)
	user, err := repository.Create(models.User{
		Username: "alice",
		Email:    "alice@x.com",
		Password: hashed,
	})
	require.NoError(t, err)

	return NewUserService(repository, passwords), repository, user
}

func TestUserService_UpdatePartialPayload(t *testing.T) {
	service, _, user := setupUserService(t)
	originalHash := user.Password

	email := "alice@y.com"
	updated, err := service.Update(repositories.ByID(user.ID), dto.UpdateUserInput{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "alice@y.com", updated.Email)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, originalHash, updated.Password)
}

func TestUserService_UpdateEmptyPayloadIsNoop(t *testing.T) {
	service, _, user := setupUserService(t)

	updated, err := service.Update(repositories.ByID(user.ID), dto.UpdateUserInput{})
	require.NoError(t, err)

	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.Password, updated.Password)
	assert.Equal(t, user.Verified, updated.Verified)
}

func TestUserService_UpdateRehashesPassword(t *testing.T) {
	service, _, user := setupUserService(t)
	passwords := NewPasswordService()

	newPassword := "evenlonger12"
	updated, err := service.Update(repositories.ByID(user.ID), dto.UpdateUserInput{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, newPassword, updated.Password)
	assert.True(t, passwords.Verify(newPassword, updated.Password))
}

func TestUserService_UpdateNotFound(t *testing.T) {
	service, _, _ := setupUserService(t)

	username := "nobody"
	_, err := service.Update(repositories.ByID(42), dto.UpdateUserInput{Username: &username})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_DeleteByEmail(t *testing.T) {
	service, repository, user := setupUserService(t)

	deleted, err := service.Delete(repositories.ByEmail("alice@x.com"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)

	_, err = repository.Find(repositories.ByID(user.ID))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
