package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/constants"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/domain/service"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxPrice is the first value a NUMERIC(10,2) price column cannot hold.
var maxPrice = decimal.New(1, constants.MaxPriceDigits)

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProductService creates a new catalog service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListAvailable(ctx context.Context, principal *entity.Principal, filter entity.ProductFilter) ([]*entity.Product, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	filter.Category = strings.TrimSpace(filter.Category)

	products, err := srv.productRepo.ListAvailable(ctx, filter)
	if err != nil {
		return nil, databaseError(err, "list available products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*entity.Product, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return srv.visibleProduct(ctx, principal, productID)
}

// visibleProduct loads a product the caller may see. Unlisted products are hidden
// from everyone except their seller and admins.
func (srv *productService) visibleProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find product")
	}

	if !product.IsAvailable && !product.IsOwnedBy(principal.UserID) && !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return product, nil
}

// ownedProduct loads a product the caller may modify.
func (srv *productService) ownedProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.visibleProduct(ctx, principal, productID)
	if err != nil {
		return nil, err
	}

	if !product.IsOwnedBy(principal.UserID) && !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return product, nil
}

// CreateProduct lists a product for the calling seller.
func (srv *productService) CreateProduct(ctx context.Context, principal *entity.Principal, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if !principal.IsSeller() {
		return nil, errors.WithStack(domainerrors.ErrSellerRoleRequired)
	}

	if isBlank(input.Name) {
		return nil, validationError("name is required")
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if input.StockQuantity < 0 {
		return nil, validationError("stock_quantity cannot be negative")
	}

	now := srv.now()
	product := &entity.Product{
		ID:            uuid.New(),
		SellerID:      principal.UserID,
		SellerName:    principal.Username,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		Category:      strings.TrimSpace(input.Category),
		Image:         input.Image,
		StockQuantity: input.StockQuantity,
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	product.SyncAvailability()

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, databaseError(err, "create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Any("product_id", product.ID),
		slog.Any("seller_id", product.SellerID),
		slog.Int("stock_quantity", product.StockQuantity),
	)

	return product, nil
}

// validatePrice accepts what the price column stores exactly: positive, at most
// two decimal places and below maxPrice.
func validatePrice(price decimal.Decimal) error {
	switch {
	case !price.IsPositive():
		return validationError("price must be greater than zero")
	case !price.Equal(price.Truncate(constants.PriceScale)):
		return validationError("price must have at most 2 decimal places")
	case price.GreaterThanOrEqual(maxPrice):
		return validationError("price must be less than " + maxPrice.String())
	}

	return nil
}

func validateProductPatch(patch *entity.ProductPatch) error {
	if patch == nil {
		return nil
	}
	if patch.Name != nil && isBlank(*patch.Name) {
		return validationError("name cannot be empty")
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return err
		}
	}
	if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
		return validationError("stock_quantity cannot be negative")
	}

	return nil
}

// UpdateProduct applies a partial update. Patches that touch stock or availability
// run on the locked row, so they serialize with PlaceOrder. Other patches never
// write the stock columns.
func (srv *productService) UpdateProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID, patch *entity.ProductPatch) (*entity.Product, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := validateProductPatch(patch); err != nil {
		return nil, err
	}

	product, err := srv.ownedProduct(ctx, principal, productID)
	if err != nil {
		return nil, err
	}

	if !patch.TouchesStock() {
		patch.Apply(product)
		if err := srv.productRepo.Update(ctx, product, patch); err != nil {
			return nil, productWriteError(err, "update product")
		}
		product.UpdatedAt = srv.now()

		return product, nil
	}

	sellerName := product.SellerName
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		locked, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return productWriteError(err, "lock product")
		}

		patch.Apply(locked)
		if err := productRepo.Update(ctx, locked, patch); err != nil {
			return productWriteError(err, "update product stock")
		}
		product = locked

		return nil
	})
	if err != nil {
		return nil, err
	}

	product.SellerName = sellerName
	product.UpdatedAt = srv.now()

	srv.log(ctx).Info("Product stock updated",
		slog.Any("product_id", product.ID),
		slog.Int("stock_quantity", product.StockQuantity),
		slog.Bool("is_available", product.IsAvailable),
	)

	return product, nil
}

func productWriteError(err error, operation string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return databaseError(err, operation)
}

func (srv *productService) DeleteProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	product, err := srv.ownedProduct(ctx, principal, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, product.ID); err != nil {
		return productWriteError(err, "delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("product_id", product.ID))

	return nil
}

func (srv *productService) ProductQRCode(ctx context.Context, principal *entity.Principal, productID uuid.UUID) ([]byte, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	product, err := srv.visibleProduct(ctx, principal, productID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(product.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
