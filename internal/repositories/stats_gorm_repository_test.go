package repositories_test

import (
	"testing"
	"time"

	"watchstore/internal/models"
	"watchstore/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMStatsRepository(t *testing.T) {
	db := setupTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	statsRepo := repositories.NewGORMStatsRepository(db)

	critical := 3
	lowStock := &models.Product{
		Name: "Galaxy Watch 5 Pro", Brand: "Samsung", Price: 399.99,
		IsPublished: true, Stock: 10, CriticalStock: &critical,
	}
	require.NoError(t, productRepo.Create(lowStock))
	healthy := seedProduct(t, productRepo, "Apple Watch Series 8", 30, true)

	base := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	place := func(product *models.Product, qty int, email string, status models.OrderStatus, method models.PaymentMethod, at time.Time) {
		t.Helper()
		order := newTestOrder(models.OrderItem{ProductID: product.ID, Quantity: qty, Price: product.Price})
		order.Email = email
		order.Status = status
		order.PaymentMethod = method
		order.GrandTotal = product.Price * float64(qty)
		order.CreatedAt = at
		require.NoError(t, orderRepo.Create(order))
	}

	// Eight units of the first product leave it at stock 2, below its
	// critical threshold of 3.
	place(lowStock, 5, "a@example.com", models.OrderStatusDelivered, models.PaymentMethodPix, base)
	place(lowStock, 3, "b@example.com", models.OrderStatusConfirmed, models.PaymentMethodCreditCard, base.Add(time.Hour))
	place(healthy, 1, "a@example.com", models.OrderStatusDelivered, models.PaymentMethodPix, base.Add(2*time.Hour))
	// Outside the stats scope: pending, and outside the date range.
	place(healthy, 1, "c@example.com", models.OrderStatusPending, models.PaymentMethodPix, base.Add(3*time.Hour))
	place(healthy, 1, "d@example.com", models.OrderStatusDelivered, models.PaymentMethodPix, base.AddDate(0, 2, 0))

	period := repositories.StatsPeriod{
		Start: base.Add(-24 * time.Hour),
		End:   base.Add(24 * time.Hour),
		Statuses: []models.OrderStatus{
			models.OrderStatusConfirmed,
			models.OrderStatusPreparing,
			models.OrderStatusShipped,
			models.OrderStatusDelivered,
		},
	}

	count, err := statsRepo.CountProducts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = statsRepo.CountOrders(period)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = statsRepo.CountCustomers(period)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	revenue, err := statsRepo.SumRevenue(period)
	require.NoError(t, err)
	assert.InDelta(t, 5*399.99+3*399.99+100.00, revenue, 0.001)

	records, err := statsRepo.SalesInPeriod(period)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].CreatedAt.Before(records[2].CreatedAt))

	top, err := statsRepo.TopProducts(period, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, lowStock.ID, top[0].ProductID)
	assert.Equal(t, 8, top[0].Units)
	assert.Equal(t, 1, top[1].Units)

	statuses, err := statsRepo.OrderStatusCounts(period)
	require.NoError(t, err)
	assert.Len(t, statuses, 2)

	methods, err := statsRepo.PaymentMethodCounts(period)
	require.NoError(t, err)
	byMethod := map[models.PaymentMethod]int64{}
	for _, row := range methods {
		byMethod[row.Method] = row.Count
	}
	assert.Equal(t, int64(2), byMethod[models.PaymentMethodPix])
	assert.Equal(t, int64(1), byMethod[models.PaymentMethodCreditCard])

	low, err := statsRepo.LowStockProducts()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, lowStock.ID, low[0].ID)
}

func TestGORMStatsRepository_EmptyPeriod(t *testing.T) {
	db := setupTestDB(t)
	statsRepo := repositories.NewGORMStatsRepository(db)

	period := repositories.StatsPeriod{
		Start:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Statuses: []models.OrderStatus{models.OrderStatusDelivered},
	}

	revenue, err := statsRepo.SumRevenue(period)
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)

	count, err := statsRepo.CountOrders(period)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
