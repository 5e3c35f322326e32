package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a customer's purchase of one product. TotalPrice is frozen at placement.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer"`
	CustomerName    string          `json:"customer_name"`
	ProductID       uuid.UUID       `json:"product"`
	ProductName     string          `json:"product_name"`
	SellerID        uuid.UUID       `json:"seller"`
	Quantity        int             `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	OrderDate       time.Time       `json:"order_date"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewOrder builds a pending order for quantity units of product.
func NewOrder(customerID uuid.UUID, product *Product, quantity int, shippingAddress string, now time.Time) *Order {
	return &Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		SellerID:        product.SellerID,
		Quantity:        quantity,
		TotalPrice:      product.TotalFor(quantity),
		Status:          OrderStatusPending,
		ShippingAddress: shippingAddress,
		OrderDate:       now,
		UpdatedAt:       now,
	}
}

// IsVisibleTo reports whether userID is the order's customer or the product's seller.
func (o *Order) IsVisibleTo(userID uuid.UUID) bool {
	return o != nil && (o.CustomerID == userID || o.SellerID == userID)
}
