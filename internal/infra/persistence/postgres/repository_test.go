package postgres

import (
	"context"
	"testing"
	"time"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var productColumns = []string{
	"id", "seller_id", "name", "description", "price", "category", "image",
	"stock_quantity", "is_available", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestProductRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("locks the product row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)
		productID, sellerID := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(productID.String(), sellerID.String(), "Ikat stole", "", "150.00", "textiles", "", 5, true, now, now))

		product, err := repo.FindByIDForUpdate(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, 5, product.StockQuantity)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("150")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a missing row to ErrProductNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(productColumns))

		product, err := repo.FindByIDForUpdate(ctx, uuid.New())

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ListAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT products\.\*, users\.username AS seller_name FROM "products" ` +
		`JOIN users ON users\.id = products\.seller_id ` +
		`WHERE products\.is_available = .* AND products\.category = .* ` +
		`ORDER BY products\.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(append(productColumns, "seller_name")).
			AddRow(uuid.NewString(), uuid.NewString(), "Ikat stole", "", "150.00", "textiles", "", 3, true, now, now, "meera"))

	products, err := repo.ListAvailable(context.Background(), entity.ProductFilter{Category: "textiles"})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "meera", products[0].SellerName)
	assert.Equal(t, "textiles", products[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("writes stock and availability", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectExec(`UPDATE "products" SET .*"is_available".*"stock_quantity"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStock(ctx, uuid.New(), 0, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a vanished product", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStock(ctx, uuid.New(), 2, true), repository.ErrProductNotFound)
	})
}

func TestProductRepository_Update(t *testing.T) {
	ctx := context.Background()
	renamed := "Ikat stole, indigo"

	t.Run("rename leaves stock columns alone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)
		product := &entity.Product{ID: uuid.New(), Name: renamed, StockQuantity: 5, IsAvailable: true}

		mock.ExpectExec(`UPDATE "products" SET "name"=\$1(,"updated_at"=\$2)? WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, product, &entity.ProductPatch{Name: &renamed}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("restock writes stock and availability together", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)
		product := &entity.Product{ID: uuid.New(), StockQuantity: 8, IsAvailable: true}

		mock.ExpectExec(`UPDATE "products" SET "is_available"=\$1,"stock_quantity"=\$2`).
			WithArgs(true, 8, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, product, &entity.ProductPatch{StockQuantity: intPtr(8)}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch writes nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		require.NoError(t, repo.Update(ctx, &entity.Product{ID: uuid.New()}, &entity.ProductPatch{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	tests := []struct {
		name    string
		pgCode  string
		details string
	}{
		{name: "check violation", pgCode: pgCheckViolation, details: "price must be positive and stock non-negative"},
		{name: "numeric overflow", pgCode: pgNumericOutOfRange, details: "price is out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name+" is a validation failure", func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewProductRepository(db)
			price := decimal.RequireFromString("0.001")
			product := &entity.Product{ID: uuid.New(), Price: price}

			mock.ExpectExec(`UPDATE "products" SET "price"`).
				WillReturnError(&pgconn.PgError{Code: tt.pgCode})

			err := repo.Update(ctx, product, &entity.ProductPatch{Price: &price})

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestProductRepository_CreateCheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`INSERT INTO "products"`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

	err := repo.Create(context.Background(), &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Ikat stole"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func intPtr(v int) *int {
	return &v
}

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Ikat stole", Price: decimal.NewFromInt(150)}
	order := entity.NewOrder(uuid.New(), product, 2, "12 Loom Street", time.Now())

	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), order))
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(300)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListBySeller(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	sellerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`JOIN products ON products\.id = orders\.product_id WHERE products\.seller_id = .* ORDER BY orders\.order_date DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "product_id", "quantity", "total_price", "status",
			"shipping_address", "order_date", "updated_at", "customer_name", "product_name", "seller_id",
		}).AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), 2, "300.00", "pending", "12 Loom Street", now, now, "asha", "Ikat stole", sellerID.String()))

	orders, err := repo.ListBySeller(context.Background(), sellerID)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "asha", orders[0].CustomerName)
	assert.Equal(t, "Ikat stole", orders[0].ProductName)
	assert.Equal(t, sellerID, orders[0].SellerID)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
}

func TestGroupRepository_Membership(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate join maps to ErrMembershipExists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGroupRepository(db)

		mock.ExpectExec(`INSERT INTO "group_members"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.AddMember(ctx, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, repository.ErrMembershipExists)
	})

	t.Run("leaving without membership maps to ErrMembershipNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGroupRepository(db)

		mock.ExpectExec(`DELETE FROM "group_members" WHERE group_id = .* AND user_id = `).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveMember(ctx, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, repository.ErrMembershipNotFound)
	})
}

func TestMessageRepository_ListDirect(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)
	userID, otherID := uuid.New(), uuid.New()

	mock.ExpectQuery(`WHERE messages\.group_id IS NULL AND .*messages\.sender_id = .* OR messages\.receiver_id = .*ORDER BY messages\.timestamp DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "sender_id", "receiver_id", "group_id", "content", "timestamp", "is_read",
			"sender_name", "receiver_name", "group_name",
		}).AddRow(uuid.NewString(), otherID.String(), userID.String(), nil, "hello", time.Now(), false, "ravi", "asha", nil))

	messages, err := repo.ListDirect(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, entity.MessageKindDirect, messages[0].Kind())
	assert.Equal(t, "ravi", messages[0].SenderName)
	assert.Equal(t, "asha", messages[0].ReceiverName)
	assert.Empty(t, messages[0].GroupName)
}

func TestUserRepository_CreateConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.User{ID: uuid.New(), Username: "asha", Role: entity.RoleCustomer})

	assert.ErrorIs(t, err, repository.ErrUserConflict)
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
			return repos.NewProductRepository().UpdateStock(ctx, uuid.New(), 1, true)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the business error", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)
		errBusiness := errors.New("insufficient stock")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
			return errBusiness
		})

		assert.ErrorIs(t, err, errBusiness)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
