package services

import (
	"errors"
	"fmt"
	"log"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
	"watchstore/pkg/rabbitmq"

	"github.com/google/uuid"
)

// OrderService is the order engine: it validates checkout requests
// against the current catalog, computes totals from server-side
// prices, delegates the atomic stock reservation to the repository and
// governs the order status lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client // nil disables event publishing
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder places an order.
//
// Every referenced product must resolve to an existing, published
// record and have stock for the requested quantity. Line prices are
// snapshotted from the product at this moment; the client-declared
// price and total are treated as a display echo and never charged.
// Stock decrement and order insertion happen atomically in the
// repository, so a concurrent order draining the stock after this
// validation still cannot push stock negative; the commit fails
// instead and nothing is persisted.
func (s *OrderService) CreateOrder(req models.CreateOrderRequest) (*models.Order, error) {
	ids := make([]string, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, line := range req.Items {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	products, err := s.productRepo.GetPublishedByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	if len(byID) != len(ids) {
		return nil, ErrProductUnavailable
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product := byID[line.ProductID]
		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("%w for product: %s", repositories.ErrInsufficientStock, product.Name)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price, // authoritative price, not the client echo
		})
		totalAmount += product.Price * float64(line.Quantity)
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		TotalAmount:   totalAmount,
		ShippingCost:  req.ShippingCost,
		GrandTotal:    totalAmount + req.ShippingCost,
		Notes:         req.Notes,
		Items:         items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id":    order.ID,
		"email":       order.Email,
		"status":      order.Status,
		"grand_total": order.GrandTotal,
		"items":       len(order.Items),
	})
	s.alertLowStock(order)

	return order, nil
}

// UpdateOrder applies an administrative update to an order's status,
// payment status, tracking code and notes. Omitted tracking code and
// notes keep their stored values, so a later status-only update never
// erases them.
//
// Two transitions are validated: CANCELLED requires the current status
// to be PENDING, and SHIPPED requires a tracking code, either in the
// request or already stored. Everything else is left to the operator.
// When the order moves into CANCELLED from any other status, each
// line's quantity is restored to its product's stock in the same
// transaction as the status change.
func (s *OrderService) UpdateOrder(id string, req models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status == models.OrderStatusCancelled && order.Status != models.OrderStatusPending {
		return nil, ErrCancelNotAllowed
	}

	if req.TrackingCode != nil {
		order.TrackingCode = *req.TrackingCode
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if req.Status == models.OrderStatusShipped && order.TrackingCode == "" {
		return nil, ErrTrackingCodeRequired
	}

	// The restock trigger is deliberately "entering CANCELLED", not
	// "was PENDING": combined with the rule above it only ever fires
	// from PENDING, and an already-cancelled order can never restock
	// twice.
	restock := req.Status == models.OrderStatusCancelled && order.Status != models.OrderStatusCancelled

	order.Status = req.Status
	order.PaymentStatus = req.PaymentStatus

	if err := s.orderRepo.Update(order, restock); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}

	if restock {
		s.publishEvent("order.cancelled", map[string]interface{}{
			"order_id": order.ID,
			"items":    len(order.Items),
		})
	}

	return order, nil
}

// publishEvent sends an order event to the broker. Publishing is best
// effort: failures are logged and never fail the order operation.
func (s *OrderService) publishEvent(name string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(name, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", name, err)
	}
}

// alertLowStock publishes a stock.low event for every product the
// order pushed to or below its critical stock threshold. The reloaded
// item snapshots carry post-decrement stock values.
func (s *OrderService) alertLowStock(order *models.Order) {
	for _, item := range order.Items {
		if item.Product.BelowCriticalStock() {
			s.publishEvent("stock.low", map[string]interface{}{
				"product_id":     item.Product.ID,
				"name":           item.Product.Name,
				"stock":          item.Product.Stock,
				"critical_stock": *item.Product.CriticalStock,
			})
		}
	}
}
