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
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// reject records a refused order and returns its error.
func (srv *orderService) reject(ctx context.Context, cause *domainerrors.BaseError, productID uuid.UUID) error {
	srv.metrics.OrderRejected(cause.ErrorCode())
	srv.log(ctx).Info("Order rejected",
		slog.Any("product_id", productID),
		slog.String("reason", cause.ErrorCode()),
	)

	return errors.WithStack(cause)
}

// PlaceOrder locks the product row, checks and decrements stock, and records the
// order in one transaction. Of two racing buyers, the second re-reads the
// decremented stock after the first commits.
func (srv *orderService) PlaceOrder(ctx context.Context, principal *entity.Principal, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	shippingAddress := strings.TrimSpace(input.ShippingAddress)
	if shippingAddress == "" {
		return nil, srv.reject(ctx, domainerrors.ErrShippingAddressRequired, input.ProductID)
	}

	quantity := constants.DefaultOrderQuantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 1 {
		return nil, srv.reject(ctx, domainerrors.ErrInvalidQuantity, input.ProductID)
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		product, err := productRepo.FindByIDForUpdate(ctx, input.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}
		if err != nil {
			return databaseError(err, "lock product")
		}

		// Unlisted products are invisible to buyers. Only the seller or an
		// admin, who can still see the product, learn that it is unavailable.
		if !product.IsAvailable {
			if !product.IsOwnedBy(principal.UserID) && !principal.IsAdmin() {
				return errors.WithStack(domainerrors.ErrProductNotFound)
			}

			return errors.WithStack(domainerrors.ErrProductUnavailable)
		}
		if !product.CanFulfil(quantity) {
			return errors.WithStack(domainerrors.ErrInsufficientStock)
		}

		product.Reserve(quantity)
		if err := productRepo.UpdateStock(ctx, product.ID, product.StockQuantity, product.IsAvailable); err != nil {
			return databaseError(err, "decrement stock")
		}

		// total is priced from the locked row
		order = entity.NewOrder(principal.UserID, product, quantity, shippingAddress, srv.now())
		order.CustomerName = principal.Username
		if err := orderRepo.Create(ctx, order); err != nil {
			return databaseError(err, "create order")
		}

		return nil
	})
	if err != nil {
		var appErr *domainerrors.BaseError
		if errors.As(err, &appErr) {
			return nil, srv.reject(ctx, appErr, input.ProductID)
		}

		srv.log(ctx).Error("Failed to place order", slog.Any("product_id", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.OrderPlaced()
	srv.log(ctx).Info("Order placed",
		slog.Any("order_id", order.ID),
		slog.Any("product_id", order.ProductID),
		slog.Int("quantity", order.Quantity),
		slog.String("total_price", order.TotalPrice.StringFixed(2)),
	)

	srv.publishOrderPlaced(ctx, order)

	return order, nil
}

// publishOrderPlaced announces a committed order. The order stands even if publishing fails.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := entity.NewOrderPlacedEvent(order, deliverycontext.GetRequestIDFromContext(ctx))
	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("order_id", order.ID), slog.Any("error", err))
	}
}

// ListOrders returns the caller's ledger: sales for sellers, purchases otherwise.
func (srv *orderService) ListOrders(ctx context.Context, principal *entity.Principal) ([]*entity.Order, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var (
		orders []*entity.Order
		err    error
	)
	if principal.IsSeller() {
		orders, err = srv.orderRepo.ListBySeller(ctx, principal.UserID)
	} else {
		orders, err = srv.orderRepo.ListByCustomer(ctx, principal.UserID)
	}
	if err != nil {
		return nil, databaseError(err, "list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find order")
	}

	if !order.IsVisibleTo(principal.UserID) && !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return order, nil
}
