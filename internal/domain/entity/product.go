package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item a seller lists in the catalog.
//
// IsAvailable is always false when StockQuantity is zero.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	SellerID      uuid.UUID       `json:"seller"`
	SellerName    string          `json:"seller_name"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	StockQuantity int             `json:"stock_quantity"`
	IsAvailable   bool            `json:"is_available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SyncAvailability forces the product off the catalog once it is out of stock.
func (p *Product) SyncAvailability() {
	if p.StockQuantity <= 0 {
		p.StockQuantity = 0
		p.IsAvailable = false
	}
}

// ApplyStockChange sets a new stock level. A restock re-lists the product unless
// the caller explicitly chose availability.
func (p *Product) ApplyStockChange(stock int, explicitAvailable *bool) {
	p.StockQuantity = stock
	switch {
	case explicitAvailable != nil:
		p.IsAvailable = *explicitAvailable
	case stock > 0:
		p.IsAvailable = true
	}
	p.SyncAvailability()
}

// CanFulfil reports whether quantity units are in stock.
func (p *Product) CanFulfil(quantity int) bool {
	return quantity > 0 && quantity <= p.StockQuantity
}

// Reserve decrements stock for an order. Callers must hold the row lock and
// check CanFulfil first.
func (p *Product) Reserve(quantity int) {
	p.StockQuantity -= quantity
	p.SyncAvailability()
}

// TotalFor returns price × quantity.
func (p *Product) TotalFor(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// IsOwnedBy reports whether userID is the product's seller.
func (p *Product) IsOwnedBy(userID uuid.UUID) bool {
	return p != nil && p.SellerID == userID
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
}

// ProductPatch holds the optional fields of a product update.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	Category      *string
	Image         *string
	StockQuantity *int
	IsAvailable   *bool
}

// Apply copies every non-nil field onto the product and re-applies the availability rule.
func (patch *ProductPatch) Apply(p *Product) {
	if patch == nil || p == nil {
		return
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}

	if patch.StockQuantity != nil {
		p.ApplyStockChange(*patch.StockQuantity, patch.IsAvailable)

		return
	}

	if patch.IsAvailable != nil {
		p.IsAvailable = *patch.IsAvailable
	}
	p.SyncAvailability()
}

// TouchesStock reports whether applying the patch may change stock or availability.
func (patch *ProductPatch) TouchesStock() bool {
	return patch != nil && (patch.StockQuantity != nil || patch.IsAvailable != nil)
}
