package services_test

import (
	"errors"
	"testing"

	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSettingRepository is a mock implementation of
// repositories.SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetAll() ([]models.Setting, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Setting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func TestSettingsService_GetSettings_Defaults(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingsService(mockRepo)

	mockRepo.On("GetAll").Return([]models.Setting{}, nil).Once()

	settings, err := service.GetSettings()

	assert.NoError(t, err)
	assert.Equal(t, models.DefaultStoreSettings(), settings)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_GetSettings_MergesStoredValues(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingsService(mockRepo)

	stored := []models.Setting{
		{Key: "maintenanceMode", Value: "true"},
		{Key: "lowStockAlerts", Value: "false"},
		{Key: "emailNotifications", Value: "banana"}, // unparsable, keeps default
		{Key: "someLegacyKey", Value: "true"},        // unknown, ignored
	}
	mockRepo.On("GetAll").Return(stored, nil).Once()

	settings, err := service.GetSettings()

	assert.NoError(t, err)
	assert.True(t, settings.MaintenanceMode)
	assert.False(t, settings.LowStockAlerts)
	assert.True(t, settings.EmailNotifications)
	assert.True(t, settings.OrderNotifications)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_SaveSettings(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingsService(mockRepo)

	mockRepo.On("Upsert", "emailNotifications", "false").Return(nil).Once()
	mockRepo.On("Upsert", "orderNotifications", "true").Return(nil).Once()
	mockRepo.On("Upsert", "lowStockAlerts", "true").Return(nil).Once()
	mockRepo.On("Upsert", "maintenanceMode", "true").Return(nil).Once()

	err := service.SaveSettings(models.StoreSettings{
		EmailNotifications: false,
		OrderNotifications: true,
		LowStockAlerts:     true,
		MaintenanceMode:    true,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_SaveSettings_RepositoryError(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingsService(mockRepo)

	dbErr := errors.New("database gone")
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(dbErr)

	err := service.SaveSettings(models.DefaultStoreSettings())

	assert.ErrorIs(t, err, dbErr)
}
