package repositories

import (
	"errors"
	"fmt"
	"watchstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database, including
// unpublished ones.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Features").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// ListPublished retrieves published products matching the filter,
// newest first.
func (r *GORMProductRepository) ListPublished(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Preload("Features").Where("is_published = ?", true)

	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Feature != "" {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&models.Feature{}).Select("product_id").Where("name = ?", filter.Feature),
		)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list published products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Features").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetPublishedByIDs resolves an ID set to currently published products.
func (r *GORMProductRepository) GetPublishedByIDs(ids []string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("id IN ? AND is_published = ?", ids, true).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by IDs: %w", err)
	}
	return products, nil
}

// Create creates a new product and its features in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Features {
		if product.Features[i].ID == "" {
			product.Features[i].ID = uuid.New().String()
		}
		product.Features[i].ProductID = product.ID
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves a product and reconciles its feature set: features
// absent from the payload are deleted, features without an ID are
// created, the rest are updated. Everything runs in one transaction.
func (r *GORMProductRepository) Update(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		keptIDs := make([]string, 0, len(product.Features))
		isNew := make([]bool, len(product.Features))
		for i := range product.Features {
			if product.Features[i].ID == "" {
				product.Features[i].ID = uuid.New().String()
				isNew[i] = true
			}
			product.Features[i].ProductID = product.ID
			if !isNew[i] {
				keptIDs = append(keptIDs, product.Features[i].ID)
			}
		}

		query := tx.Where("product_id = ?", product.ID)
		if len(keptIDs) > 0 {
			query = query.Where("id NOT IN ?", keptIDs)
		}
		if err := query.Delete(&models.Feature{}).Error; err != nil {
			return fmt.Errorf("failed to prune features: %w", err)
		}

		for i := range product.Features {
			var err error
			if isNew[i] {
				err = tx.Create(&product.Features[i]).Error
			} else {
				err = tx.Save(&product.Features[i]).Error
			}
			if err != nil {
				return fmt.Errorf("failed to save feature %s: %w", product.Features[i].Name, err)
			}
		}

		res := tx.Omit("Features").Save(product) // Save updates all fields, including zero values
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		return nil
	})
	return err
}

// Delete deletes a product and its features by the product's ID.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Feature{}).Error; err != nil {
			return fmt.Errorf("failed to delete features for product %s: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
