package repositories

import (
	"time"
	"watchstore/internal/models"
)

// StatsPeriod scopes dashboard queries to a date range and a set of
// order statuses.
type StatsPeriod struct {
	Start    time.Time
	End      time.Time
	Statuses []models.OrderStatus
}

// SaleRecord is one order's contribution to revenue, kept with its
// timestamp so the service can bucket by month or weekday.
type SaleRecord struct {
	CreatedAt  time.Time
	GrandTotal float64
}

// TopProduct is a best-seller row: units sold in the period joined
// with the product's current details.
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	Units     int     `json:"units"`
}

// StatusCount counts orders per status.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// MethodCount counts orders per payment method.
type MethodCount struct {
	Method models.PaymentMethod `json:"method"`
	Count  int64                `json:"count"`
}

// StatsRepository defines the aggregation queries behind the admin
// dashboard.
type StatsRepository interface {
	CountProducts() (int64, error)
	CountOrders(p StatsPeriod) (int64, error)
	// CountCustomers counts distinct order emails in the period.
	CountCustomers(p StatsPeriod) (int64, error)
	SumRevenue(p StatsPeriod) (float64, error)
	// SalesInPeriod returns one record per order in the period,
	// ordered by creation time.
	SalesInPeriod(p StatsPeriod) ([]SaleRecord, error)
	TopProducts(p StatsPeriod, limit int) ([]TopProduct, error)
	OrderStatusCounts(p StatsPeriod) ([]StatusCount, error)
	PaymentMethodCounts(p StatsPeriod) ([]MethodCount, error)
	// LowStockProducts returns products at or below their critical
	// stock threshold.
	LowStockProducts() ([]models.Product, error)
}
