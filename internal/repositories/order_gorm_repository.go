package repositories

import (
	"errors"
	"fmt"
	"watchstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders newest first, with items and product
// snapshots loaded.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items.Product").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID with items and product
// snapshots loaded.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items.Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create reserves stock for every line and inserts the order and its
// items in a single transaction.
//
// The decrement is guarded (stock >= quantity, published only), so a
// concurrent order that drained the stock between the service's
// validation read and this commit makes the guard match zero rows and
// the whole transaction rolls back. Stock can never go negative.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	items := order.Items
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].OrderID = order.ID
		items[i].Product = models.Product{} // snapshot reloaded after commit
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND is_published = ? AND stock >= ?", item.ProductID, true, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to reserve stock for product %s: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w for product %s", ErrInsufficientStock, item.ProductID)
			}
		}

		order.Items = nil
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		return nil
	})
	order.Items = items
	if err != nil {
		return err
	}

	return r.db.Preload("Items.Product").First(order, "id = ?", order.ID).Error
}

// Update persists the mutable order fields and, when restock is true,
// adds each line's quantity back to its product's stock in the same
// transaction.
func (r *GORMOrderRepository) Update(order *models.Order, restock bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"tracking_code":  order.TrackingCode,
			"notes":          order.Notes,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update order %s: %w", order.ID, res.Error)
		}

		if restock {
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
					return fmt.Errorf("failed to restore stock for product %s: %w", item.ProductID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.db.Preload("Items.Product").First(order, "id = ?", order.ID).Error
}
