package repositories

import (
	"watchstore/internal/models"
)

// AdminUserRepository defines the interface for admin user data access.
type AdminUserRepository interface {
	GetAll() ([]models.AdminUser, error)
	GetByID(id string) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
	Update(user *models.AdminUser) error
	Delete(id string) error
}
