package services

import (
	"watchstore/internal/models"
	"watchstore/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListPublished retrieves the public catalog: published products
// matching the filter, newest first.
func (s *ProductService) ListPublished(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.ListPublished(filter)
}

// GetAllProducts retrieves all products, including unpublished ones
// (admin listing).
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product from an admin payload.
func (s *ProductService) CreateProduct(req models.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		IsPublished:   req.IsPublished,
		Stock:         req.Stock,
		CriticalStock: req.CriticalStock,
		Features:      featuresFromRequest(req.Features),
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies an admin payload to an existing product,
// reconciling its feature set.
func (s *ProductService) UpdateProduct(id string, req models.ProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Brand = req.Brand
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.IsPublished = req.IsPublished
	product.Stock = req.Stock
	product.CriticalStock = req.CriticalStock
	product.Features = featuresFromRequest(req.Features)

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

func featuresFromRequest(reqs []models.FeatureRequest) []models.Feature {
	features := make([]models.Feature, 0, len(reqs))
	for _, f := range reqs {
		features = append(features, models.Feature{ID: f.ID, Name: f.Name})
	}
	return features
}
