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
)

const orderDetailColumns = "orders.*, customers.username AS customer_name, products.name AS product_name, products.seller_id AS seller_id"

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) detailed(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(orderDetailColumns).
		Joins("JOIN users AS customers ON customers.id = orders.customer_id").
		Joins("JOIN products ON products.id = orders.product_id")
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid order quantity or address")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var row model.OrderRow

	result := repo.detailed(ctx).Where("orders.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find order by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return toOrderDomain(&row), nil
}

func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(repo.detailed(ctx).Where("orders.customer_id = ?", customerID))
}

func (repo *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(repo.detailed(ctx).Where("products.seller_id = ?", sellerID))
}

func (repo *orderRepository) list(query *gorm.DB) ([]*entity.Order, error) {
	var rows []*model.OrderRow

	if err := query.Order("orders.order_date DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDomain(row))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderRow) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		SellerID:        data.SellerID,
		Quantity:        data.Quantity,
		TotalPrice:      data.TotalPrice,
		Status:          entity.OrderStatus(data.Status),
		ShippingAddress: data.ShippingAddress,
		OrderDate:       data.OrderDate,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		TotalPrice:      data.TotalPrice,
		Status:          string(data.Status),
		ShippingAddress: data.ShippingAddress,
		OrderDate:       data.OrderDate,
		UpdatedAt:       data.UpdatedAt,
	}
}
