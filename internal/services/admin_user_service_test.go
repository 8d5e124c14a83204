package services_test

import (
	"fmt"
	"testing"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
	"watchstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	service := services.NewAdminUserService(mockRepo)

	mockRepo.On("GetByEmail", "new@example.com").
		Return(nil, fmt.Errorf("admin user with email new@example.com: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.AdminUser")).Return(nil).Once()

	user, err := service.CreateUser(models.CreateAdminUserRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	// Stored as a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	mockRepo.AssertExpectations(t)
}

func TestAdminUserService_CreateUser_EmailTaken(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	service := services.NewAdminUserService(mockRepo)

	existing := &models.AdminUser{ID: "user-1", Email: "taken@example.com"}
	mockRepo.On("GetByEmail", "taken@example.com").Return(existing, nil).Once()

	user, err := service.CreateUser(models.CreateAdminUserRequest{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAdminUserService_UpdateUser_KeepsUnsetFields(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	service := services.NewAdminUserService(mockRepo)

	existing := &models.AdminUser{ID: "user-1", Email: "admin@example.com", Password: "old-hash"}
	mockRepo.On("GetByID", "user-1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.AdminUser")).Return(nil).Once()

	user, err := service.UpdateUser("user-1", models.UpdateAdminUserRequest{
		Password: "new-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-secret")))
	mockRepo.AssertExpectations(t)
}

func TestAdminUserService_UpdateUser_EmailTaken(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	service := services.NewAdminUserService(mockRepo)

	existing := &models.AdminUser{ID: "user-1", Email: "admin@example.com"}
	other := &models.AdminUser{ID: "user-2", Email: "other@example.com"}
	mockRepo.On("GetByID", "user-1").Return(existing, nil).Once()
	mockRepo.On("GetByEmail", "other@example.com").Return(other, nil).Once()

	user, err := service.UpdateUser("user-1", models.UpdateAdminUserRequest{
		Email: "other@example.com",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAdminUserService_DeleteUser_NotFound(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	service := services.NewAdminUserService(mockRepo)

	mockRepo.On("Delete", "user-404").
		Return(fmt.Errorf("admin user with ID user-404: %w", repositories.ErrNotFound)).Once()

	err := service.DeleteUser("user-404")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
