package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"watchstore/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It shares a MockProductRepository so that stock reservation and
// restoration behave like the transactional GORM implementation:
// a line that cannot be reserved rolls back the reservations made for
// the lines before it.
type MockOrderRepository struct {
	orders      map[string]models.Order
	productRepo *MockProductRepository
	mu          sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(productRepo *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:      make(map[string]models.Order),
		productRepo: productRepo,
	}
}

// GetAll returns all orders newest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return &order, nil
}

// Create reserves stock line by line and stores the order. On a failed
// reservation every previous line is released again, so the operation
// is all-or-nothing just like the database transaction it stands in for.
func (r *MockOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	var reserved []models.OrderItem
	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID
		if err := r.productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
			for _, done := range reserved {
				// Release what was already taken; the product existed
				// a moment ago so the error is not actionable here.
				_ = r.productRepo.IncrementStock(done.ProductID, done.Quantity)
			}
			return err
		}
		reserved = append(reserved, *item)
	}

	for i := range order.Items {
		if p, err := r.productRepo.GetByID(order.Items[i].ProductID); err == nil {
			order.Items[i].Product = *p
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// Update replaces the mutable fields of an order and, when restock is
// true, returns each line's quantity to its product's stock.
func (r *MockOrderRepository) Update(order *models.Order, restock bool) error {
	r.mu.Lock()
	stored, ok := r.orders[order.ID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("order with ID %s: %w", order.ID, ErrNotFound)
	}
	stored.Status = order.Status
	stored.PaymentStatus = order.PaymentStatus
	stored.TrackingCode = order.TrackingCode
	stored.Notes = order.Notes
	stored.UpdatedAt = time.Now()
	r.orders[order.ID] = stored
	r.mu.Unlock()

	if restock {
		for _, item := range stored.Items {
			if err := r.productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
	}

	*order = stored
	return nil
}
