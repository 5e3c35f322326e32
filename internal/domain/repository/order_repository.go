package repository

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order ledger persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with customer, product and seller details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByCustomer returns orders placed by the customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListBySeller returns orders on the seller's products, newest first.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)
}
