package models

import "gorm.io/gorm"

// AdminUser is a back-office operator. There are no customer accounts;
// storefront orders carry their own contact fields.
type AdminUser struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
