package models

// Request DTOs validated with go-playground/validator before any
// domain logic runs. Handlers return the per-field violations as a
// 400 response.

// OrderItemRequest is one checkout line. The client-declared price is
// accepted for display echo only; the charged price is always read
// from the product record server-side.
type OrderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

// CreateOrderRequest is the storefront checkout payload.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required,max=100"`
	Email         string             `json:"email" validate:"required,email"`
	Phone         string             `json:"phone" validate:"required,max=50"`
	Address       string             `json:"address" validate:"required"`
	PaymentMethod PaymentMethod      `json:"payment_method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PIX BANK_SLIP"`
	Notes         string             `json:"notes" validate:"omitempty,max=1000"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64            `json:"total_amount" validate:"required,gt=0"`
	ShippingCost  float64            `json:"shipping_cost" validate:"gte=0"`
}

// UpdateOrderRequest is the admin order-management payload.
// TrackingCode and Notes are optional; when a request omits them the
// stored values are kept.
type UpdateOrderRequest struct {
	Status        OrderStatus   `json:"status" validate:"required,oneof=PENDING CONFIRMED PREPARING SHIPPED DELIVERED CANCELLED"`
	PaymentStatus PaymentStatus `json:"payment_status" validate:"required,oneof=PENDING PAID FAILED REFUNDED"`
	TrackingCode  *string       `json:"tracking_code" validate:"omitempty,max=100"`
	Notes         *string       `json:"notes" validate:"omitempty,max=1000"`
}

// FeatureRequest is one product feature in an admin product payload.
// An empty ID means the feature is new.
type FeatureRequest struct {
	ID   string `json:"id" validate:"omitempty,uuid"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ProductRequest is the admin create/update product payload.
type ProductRequest struct {
	Name          string           `json:"name" validate:"required,min=3,max=100"`
	Brand         string           `json:"brand" validate:"required,max=100"`
	Description   string           `json:"description" validate:"required,max=500"`
	Price         float64          `json:"price" validate:"required,gt=0"`
	ImageURL      string           `json:"image_url" validate:"required,url"`
	IsPublished   bool             `json:"is_published"`
	Stock         int              `json:"stock" validate:"gte=0"`
	CriticalStock *int             `json:"critical_stock" validate:"omitempty,gte=0"`
	Features      []FeatureRequest `json:"features" validate:"dive"`
}

// CreateAdminUserRequest creates a back-office operator.
type CreateAdminUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateAdminUserRequest changes email and/or password; empty fields
// keep their current value.
type UpdateAdminUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// LoginRequest authenticates an admin user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
