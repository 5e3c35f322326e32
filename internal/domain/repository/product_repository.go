package repository

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its seller name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate reads a product on the primary and locks its row until the
	// surrounding transaction ends. It must run inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAvailable returns available products, newest first.
	ListAvailable(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// Update writes the columns the patch sets, taking values from product.
	// Stock and availability are written together whenever the patch touches
	// either, and such updates must run on a row locked by FindByIDForUpdate.
	Update(ctx context.Context, product *entity.Product, patch *entity.ProductPatch) error

	// UpdateStock writes a new stock level and availability flag.
	UpdateStock(ctx context.Context, id uuid.UUID, stock int, isAvailable bool) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}
