package postgres

import (
	"context"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const productWithSellerColumns = "products.*, users.username AS seller_name"

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withSeller(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select(productWithSellerColumns).
		Joins("JOIN users ON users.id = products.seller_id")
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if invalid := productValueError(err); invalid != nil {
			return invalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductRow

	result := repo.withSeller(ctx).Where("products.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find product by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&row), nil
}

func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	// The lock must be taken on the primary, never a replica.
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		Take(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product")
	}

	return toProductDomain(&model.ProductRow{ProductModel: productM}), nil
}

func (repo *productRepository) ListAvailable(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	var rows []*model.ProductRow

	query := repo.withSeller(ctx).Where("products.is_available = ?", true)
	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}

	if err := query.Order("products.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product, patch *entity.ProductPatch) error {
	columns := productPatchColumns(product, patch)
	if len(columns) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(columns)

	return productWriteResult(result, "failed to update product")
}

// productPatchColumns selects the columns a patch sets. Columns the patch leaves
// alone are never written back, so a concurrent stock decrement survives a rename.
func productPatchColumns(product *entity.Product, patch *entity.ProductPatch) map[string]any {
	columns := make(map[string]any)
	if patch == nil {
		return columns
	}

	if patch.Name != nil {
		columns["name"] = product.Name
	}
	if patch.Description != nil {
		columns["description"] = product.Description
	}
	if patch.Price != nil {
		columns["price"] = product.Price
	}
	if patch.Category != nil {
		columns["category"] = product.Category
	}
	if patch.Image != nil {
		columns["image"] = product.Image
	}
	if patch.TouchesStock() {
		columns["stock_quantity"] = product.StockQuantity
		columns["is_available"] = product.IsAvailable
	}

	return columns
}

func (repo *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock int, isAvailable bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock_quantity": stock,
			"is_available":   isAvailable,
		})

	return productWriteResult(result, "failed to update product stock")
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})

	return productWriteResult(result, "failed to delete product")
}

func productWriteResult(result *gorm.DB, details string) error {
	if result.Error != nil {
		if invalid := productValueError(result.Error); invalid != nil {
			return invalid
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// productValueError turns rejected column values into a validation failure.
func productValueError(err error) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive and stock non-negative")
	case isNumericOutOfRange(err):
		return domainerrors.ErrValidationFailed.WithDetails("price is out of range")
	default:
		return nil
	}
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductRow) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		SellerID:      data.SellerID,
		SellerName:    data.SellerName,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Category:      data.Category,
		Image:         data.Image,
		StockQuantity: data.StockQuantity,
		IsAvailable:   data.IsAvailable,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		SellerID:      data.SellerID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Category:      data.Category,
		Image:         data.Image,
		StockQuantity: data.StockQuantity,
		IsAvailable:   data.IsAvailable,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
