package repositories

import (
	"errors"
	"fmt"
	"watchstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAdminUserRepository is a GORM implementation of AdminUserRepository.
type GORMAdminUserRepository struct {
	db *gorm.DB
}

// NewGORMAdminUserRepository creates a new instance of GORMAdminUserRepository.
func NewGORMAdminUserRepository(db *gorm.DB) *GORMAdminUserRepository {
	return &GORMAdminUserRepository{
		db: db,
	}
}

// GetAll retrieves all admin users from the database.
func (r *GORMAdminUserRepository) GetAll() ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all admin users: %w", err)
	}
	return users, nil
}

// GetByID retrieves an admin user by their ID from the database.
func (r *GORMAdminUserRepository) GetByID(id string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin user with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get admin user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves an admin user by their email from the database.
func (r *GORMAdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get admin user by email %s: %w", email, err)
	}
	return &user, nil
}

// Create creates a new admin user in the database.
func (r *GORMAdminUserRepository) Create(user *models.AdminUser) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// Update updates an existing admin user in the database.
func (r *GORMAdminUserRepository) Update(user *models.AdminUser) error {
	res := r.db.Save(user) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update admin user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("admin user with ID %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes an admin user by their ID from the database.
func (r *GORMAdminUserRepository) Delete(id string) error {
	res := r.db.Delete(&models.AdminUser{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete admin user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("admin user with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
