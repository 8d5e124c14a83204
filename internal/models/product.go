package models

import "gorm.io/gorm"

// Product represents a smartwatch in the catalog.
// Stock is mutated only by order placement (decrement) and order
// cancellation (increment); every other field changes only through
// the admin product endpoints.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Brand         string    `json:"brand" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description   string    `json:"description" validate:"omitempty,max=500"`
	Price         float64   `json:"price" validate:"required,gt=0"`
	ImageURL      string    `json:"image_url" validate:"omitempty,url"`
	IsPublished   bool      `json:"is_published"`
	Stock         int       `json:"stock" validate:"gte=0"`
	CriticalStock *int      `json:"critical_stock" validate:"omitempty,gte=0"` // low-stock alert threshold, nil disables
	Features      []Feature `json:"features" gorm:"foreignKey:ProductID"`
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Feature is a named capability of a product (e.g. "GPS", "ECG").
type Feature struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);index"`
	Name      string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
}

// BelowCriticalStock reports whether the product has crossed its
// low-stock threshold. Products without a threshold never alert.
func (p *Product) BelowCriticalStock() bool {
	return p.CriticalStock != nil && p.Stock <= *p.CriticalStock
}
