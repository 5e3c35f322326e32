package usecase

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new catalog listing. The seller is always the caller.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Category      string
	Image         string
	StockQuantity int
	IsAvailable   *bool
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	// ListAvailable returns in-stock products, optionally of one category.
	ListAvailable(ctx context.Context, principal *entity.Principal, filter entity.ProductFilter) ([]*entity.Product, error)
	// GetProduct returns a product. Unlisted products are only visible to their seller.
	GetProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, principal *entity.Principal, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID, patch *entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) error
	// ProductQRCode renders a PNG QR code linking to the listing.
	ProductQRCode(ctx context.Context, principal *entity.Principal, productID uuid.UUID) ([]byte, error)
}
