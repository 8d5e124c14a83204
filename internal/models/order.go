package models

import "gorm.io/gorm"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// PaymentStatus tracks payment independently of fulfilment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodBankSlip   PaymentMethod = "BANK_SLIP"
)

// OrderItem is a single product line within an order. Price is
// snapshotted from the product at order creation and never recomputed.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at the time of order
}

// Order represents a customer purchase. Status, PaymentStatus,
// TrackingCode and Notes are the only fields mutable after creation.
type Order struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerName  string        `json:"customer_name" gorm:"type:varchar(100)"`
	Email         string        `json:"email" gorm:"type:varchar(255);index"`
	Phone         string        `json:"phone" gorm:"type:varchar(50)"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(20)"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20)"`
	TotalAmount   float64       `json:"total_amount"`
	ShippingCost  float64       `json:"shipping_cost"`
	GrandTotal    float64       `json:"grand_total"`
	TrackingCode  string        `json:"tracking_code"`
	Notes         string        `json:"notes"`
	Items         []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
