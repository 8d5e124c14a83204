package repositories

import (
	"fmt"
	"watchstore/internal/models"

	"gorm.io/gorm"
)

// GORMStatsRepository is a GORM implementation of StatsRepository.
type GORMStatsRepository struct {
	db *gorm.DB
}

// NewGORMStatsRepository creates a new instance of GORMStatsRepository.
func NewGORMStatsRepository(db *gorm.DB) *GORMStatsRepository {
	return &GORMStatsRepository{
		db: db,
	}
}

func (r *GORMStatsRepository) ordersInPeriod(p StatsPeriod) *gorm.DB {
	return r.db.Model(&models.Order{}).
		Where("orders.created_at BETWEEN ? AND ?", p.Start, p.End).
		Where("orders.status IN ?", p.Statuses)
}

// CountProducts counts every product in the catalog.
func (r *GORMStatsRepository) CountProducts() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CountOrders counts orders in the period.
func (r *GORMStatsRepository) CountOrders(p StatsPeriod) (int64, error) {
	var count int64
	if err := r.ordersInPeriod(p).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CountCustomers counts distinct order emails in the period.
func (r *GORMStatsRepository) CountCustomers(p StatsPeriod) (int64, error) {
	var count int64
	if err := r.ordersInPeriod(p).Distinct("email").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// SumRevenue sums grand totals of orders in the period.
func (r *GORMStatsRepository) SumRevenue(p StatsPeriod) (float64, error) {
	var total float64
	err := r.ordersInPeriod(p).
		Select("COALESCE(SUM(grand_total), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

// SalesInPeriod returns one record per order in the period, oldest first.
func (r *GORMStatsRepository) SalesInPeriod(p StatsPeriod) ([]SaleRecord, error) {
	var records []SaleRecord
	err := r.ordersInPeriod(p).
		Select("created_at, grand_total").
		Order("created_at ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return records, nil
}

// TopProducts returns the best-selling products of the period by units.
func (r *GORMStatsRepository) TopProducts(p StatsPeriod, limit int) ([]TopProduct, error) {
	var rows []TopProduct
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id AS product_id, products.name AS name, products.brand AS brand, products.price AS price, SUM(order_items.quantity) AS units").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at BETWEEN ? AND ?", p.Start, p.End).
		Where("orders.status IN ?", p.Statuses).
		Group("order_items.product_id, products.name, products.brand, products.price").
		Order("units DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}
	return rows, nil
}

// OrderStatusCounts counts the period's orders per status.
func (r *GORMStatsRepository) OrderStatusCounts(p StatsPeriod) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.ordersInPeriod(p).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count order statuses: %w", err)
	}
	return rows, nil
}

// PaymentMethodCounts counts the period's orders per payment method.
func (r *GORMStatsRepository) PaymentMethodCounts(p StatsPeriod) ([]MethodCount, error) {
	var rows []MethodCount
	err := r.ordersInPeriod(p).
		Select("payment_method AS method, COUNT(*) AS count").
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count payment methods: %w", err)
	}
	return rows, nil
}

// LowStockProducts returns products at or below their critical stock
// threshold. Products without a threshold never appear.
func (r *GORMStatsRepository) LowStockProducts() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("critical_stock IS NOT NULL AND stock <= critical_stock").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load low stock products: %w", err)
	}
	return products, nil
}
