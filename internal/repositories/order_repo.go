package repositories

import (
	"watchstore/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Create and Update are the two atomic units of the order engine:
// both mutate product stock and order rows in a single transaction,
// so a failure at any step leaves no partial effect.
type OrderRepository interface {
	// GetAll returns all orders newest first, with items and their
	// product snapshots loaded.
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// Create decrements stock for every line with a guarded update
	// (stock >= quantity, published only) and inserts the order and
	// its items in one transaction. A line that cannot be reserved
	// aborts the whole operation with ErrInsufficientStock.
	Create(order *models.Order) error
	// Update persists the mutable fields (status, paymentStatus,
	// trackingCode, notes). When restock is true, every line's
	// quantity is added back to its product's stock in the same
	// transaction.
	Update(order *models.Order, restock bool) error
}
