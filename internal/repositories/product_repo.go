package repositories

import (
	"watchstore/internal/models"
)

// ProductFilter narrows the public catalog listing. Zero values mean
// "no filter".
type ProductFilter struct {
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Feature  string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, published or not (admin listing).
	GetAll() ([]models.Product, error)
	// ListPublished returns published products matching the filter,
	// newest first.
	ListPublished(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// GetPublishedByIDs resolves an ID set to currently published
	// products. Missing or unpublished IDs are simply absent from the
	// result; the caller decides whether that is an error.
	GetPublishedByIDs(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
