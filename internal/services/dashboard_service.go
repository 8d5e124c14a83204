package services

import (
	"fmt"
	"time"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
)

// Statuses counted as sales when the dashboard request does not say
// otherwise: everything past PENDING except CANCELLED.
var defaultStatsStatuses = []models.OrderStatus{
	models.OrderStatusConfirmed,
	models.OrderStatusPreparing,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

// MonthlySale is one month's revenue bucket ("2006-01" key).
type MonthlySale struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DaySale is one weekday's revenue bucket.
type DaySale struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

// DashboardStats is the aggregated admin dashboard payload.
type DashboardStats struct {
	Period struct {
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	} `json:"period"`
	TotalProducts    int64                      `json:"total_products"`
	TotalOrders      int64                      `json:"total_orders"`
	TotalCustomers   int64                      `json:"total_customers"`
	TotalRevenue     float64                    `json:"total_revenue"`
	AverageTicket    float64                    `json:"average_ticket"`
	MonthlySales     []MonthlySale              `json:"monthly_sales"`
	TopProducts      []repositories.TopProduct  `json:"top_products"`
	OrderStatus      []repositories.StatusCount `json:"order_status"`
	PaymentMethods   []repositories.MethodCount `json:"payment_methods"`
	LowStockProducts []models.Product           `json:"low_stock_products"`
	SalesByDay       []DaySale                  `json:"sales_by_day"`
}

// DashboardService aggregates order and catalog data for the admin
// dashboard.
type DashboardService struct {
	statsRepo repositories.StatsRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(statsRepo repositories.StatsRepository) *DashboardService {
	return &DashboardService{
		statsRepo: statsRepo,
	}
}

// Stats computes the dashboard for the given period. Zero period
// fields default to the current month so far, and an empty status set
// defaults to the post-pending, non-cancelled statuses.
func (s *DashboardService) Stats(period repositories.StatsPeriod) (*DashboardStats, error) {
	now := time.Now()
	if period.Start.IsZero() {
		period.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if period.End.IsZero() {
		period.End = now
	}
	if len(period.Statuses) == 0 {
		period.Statuses = defaultStatsStatuses
	}

	stats := &DashboardStats{}
	stats.Period.StartDate = period.Start
	stats.Period.EndDate = period.End

	var err error
	if stats.TotalProducts, err = s.statsRepo.CountProducts(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.TotalOrders, err = s.statsRepo.CountOrders(period); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.TotalCustomers, err = s.statsRepo.CountCustomers(period); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.TotalRevenue, err = s.statsRepo.SumRevenue(period); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.TotalOrders > 0 {
		stats.AverageTicket = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	// Monthly chart spans the last six months regardless of the
	// requested window.
	monthlyPeriod := period
	monthlyPeriod.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -6, 0)
	monthlySales, err := s.statsRepo.SalesInPeriod(monthlyPeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	stats.MonthlySales = bucketByMonth(monthlySales)

	periodSales, err := s.statsRepo.SalesInPeriod(period)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	stats.SalesByDay = bucketByWeekday(periodSales)

	if stats.TopProducts, err = s.statsRepo.TopProducts(period, 5); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.OrderStatus, err = s.statsRepo.OrderStatusCounts(period); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.PaymentMethods, err = s.statsRepo.PaymentMethodCounts(period); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.LowStockProducts, err = s.statsRepo.LowStockProducts(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return stats, nil
}

// bucketByMonth folds sale records into per-month revenue, ordered
// chronologically. Input records are already sorted by creation time.
func bucketByMonth(records []repositories.SaleRecord) []MonthlySale {
	var sales []MonthlySale
	index := make(map[string]int)
	for _, rec := range records {
		month := rec.CreatedAt.Format("2006-01")
		if i, ok := index[month]; ok {
			sales[i].Amount += rec.GrandTotal
			continue
		}
		index[month] = len(sales)
		sales = append(sales, MonthlySale{Month: month, Amount: rec.GrandTotal})
	}
	return sales
}

// bucketByWeekday folds sale records into per-weekday revenue,
// Sunday through Saturday, skipping empty days.
func bucketByWeekday(records []repositories.SaleRecord) []DaySale {
	totals := make(map[time.Weekday]float64)
	for _, rec := range records {
		totals[rec.CreatedAt.Weekday()] += rec.GrandTotal
	}

	var sales []DaySale
	for day := time.Sunday; day <= time.Saturday; day++ {
		if amount, ok := totals[day]; ok {
			sales = append(sales, DaySale{Day: day.String(), Amount: amount})
		}
	}
	return sales
}
