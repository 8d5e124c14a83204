package repositories

import (
	"fmt"
	"watchstore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository defines the interface for settings data access.
type SettingRepository interface {
	GetAll() ([]models.Setting, error)
	Upsert(key, value string) error
}

// GORMSettingRepository is a GORM implementation of SettingRepository.
type GORMSettingRepository struct {
	db *gorm.DB
}

// NewGORMSettingRepository creates a new instance of GORMSettingRepository.
func NewGORMSettingRepository(db *gorm.DB) *GORMSettingRepository {
	return &GORMSettingRepository{
		db: db,
	}
}

// GetAll retrieves all settings from the database.
func (r *GORMSettingRepository) GetAll() ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Upsert creates a setting or replaces its value if the key exists.
func (r *GORMSettingRepository) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}
	return nil
}
