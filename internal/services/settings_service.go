package services

import (
	"strconv"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
)

// SettingsService exposes the back-office toggles stored in the
// key/value settings table.
type SettingsService struct {
	repo repositories.SettingRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repositories.SettingRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// GetSettings returns the stored settings merged over the defaults.
// Keys that were never saved, or hold an unparsable value, keep their
// default.
func (s *SettingsService) GetSettings() (models.StoreSettings, error) {
	settings := models.DefaultStoreSettings()

	stored, err := s.repo.GetAll()
	if err != nil {
		return settings, err
	}

	for _, entry := range stored {
		value, err := strconv.ParseBool(entry.Value)
		if err != nil {
			continue
		}
		switch entry.Key {
		case "emailNotifications":
			settings.EmailNotifications = value
		case "orderNotifications":
			settings.OrderNotifications = value
		case "lowStockAlerts":
			settings.LowStockAlerts = value
		case "maintenanceMode":
			settings.MaintenanceMode = value
		}
	}
	return settings, nil
}

// SaveSettings upserts every toggle.
func (s *SettingsService) SaveSettings(settings models.StoreSettings) error {
	entries := map[string]bool{
		"emailNotifications": settings.EmailNotifications,
		"orderNotifications": settings.OrderNotifications,
		"lowStockAlerts":     settings.LowStockAlerts,
		"maintenanceMode":    settings.MaintenanceMode,
	}
	for key, value := range entries {
		if err := s.repo.Upsert(key, strconv.FormatBool(value)); err != nil {
			return err
		}
	}
	return nil
}
