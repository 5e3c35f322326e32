package handler

import (
	"net/http"
	"testing"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	mockUsecase "handloom/internal/mocks/usecase"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixtures struct {
	productUC *mockUsecase.MockProductUsecase
	orderUC   *mockUsecase.MockOrderUsecase
}

func newProductTestServer(t *testing.T, principal *entity.Principal) (*echo.Echo, productFixtures) {
	t.Helper()

	fx := productFixtures{
		productUC: mockUsecase.NewMockProductUsecase(t),
		orderUC:   mockUsecase.NewMockOrderUsecase(t),
	}
	h := NewProductHandler(ProductHandlerParams{
		ProductUC: fx.productUC,
		OrderUC:   fx.orderUC,
		Logger:    newDiscardLogger(),
	})

	e := newTestEcho(principal)
	e.GET("/api/products", h.ListProducts)
	e.POST("/api/products", h.CreateProduct)
	e.DELETE("/api/products/:id", h.DeleteProduct)
	e.GET("/api/products/:id/qr", h.ProductQRCode)
	e.POST("/api/products/:id/place_order", h.PlaceOrder)

	return e, fx
}

func TestProductHandler_ListProducts(t *testing.T) {
	principal := newTestPrincipal(entity.RoleCustomer)
	e, fx := newProductTestServer(t, principal)
	fx.productUC.EXPECT().
		ListAvailable(mock.Anything, principal, entity.ProductFilter{Category: "sarees"}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Kanjivaram", Price: decimal.RequireFromString("120.50")}}, nil)

	rec := serve(e, http.MethodGet, "/api/products?category=sarees", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"price":"120.5"`)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("decimal price passes through", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleWeaver)
		e, fx := newProductTestServer(t, principal)
		fx.productUC.EXPECT().
			CreateProduct(mock.Anything, principal, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
				return in.Name == "Indigo shawl" && in.Price.Equal(decimal.RequireFromString("80.25")) && in.StockQuantity == 5
			})).
			Return(&entity.Product{ID: uuid.New(), Name: "Indigo shawl"}, nil)

		rec := serve(e, http.MethodPost, "/api/products", `{"name":"Indigo shawl","price":"80.25","stock_quantity":5}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("customers cannot list products", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		e, fx := newProductTestServer(t, principal)
		fx.productUC.EXPECT().CreateProduct(mock.Anything, principal, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrForbidden))

		rec := serve(e, http.MethodPost, "/api/products", `{"name":"Indigo shawl","price":"80.25"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("negative stock", func(t *testing.T) {
		e, _ := newProductTestServer(t, newTestPrincipal(entity.RoleWeaver))

		rec := serve(e, http.MethodPost, "/api/products", `{"name":"Indigo shawl","price":"1","stock_quantity":-1}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "stock_quantity: gte=0", decodeEnvelope(t, rec).Error.Details)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	principal := newTestPrincipal(entity.RoleAdmin)
	e, fx := newProductTestServer(t, principal)
	productID := uuid.New()
	fx.productUC.EXPECT().DeleteProduct(mock.Anything, principal, productID).Return(nil)

	rec := serve(e, http.MethodDelete, "/api/products/"+productID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProductHandler_ProductQRCode(t *testing.T) {
	principal := newTestPrincipal(entity.RoleCustomer)
	e, fx := newProductTestServer(t, principal)
	productID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.productUC.EXPECT().ProductQRCode(mock.Anything, principal, productID).Return(png, nil)

	rec := serve(e, http.MethodGet, "/api/products/"+productID.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProductHandler_PlaceOrder(t *testing.T) {
	productID := uuid.New()
	target := "/api/products/" + productID.String() + "/place_order"

	t.Run("records the order", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		e, fx := newProductTestServer(t, principal)
		fx.orderUC.EXPECT().
			PlaceOrder(mock.Anything, principal, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
				return in.ProductID == productID && in.Quantity != nil && *in.Quantity == 3 && in.ShippingAddress == "12 Loom St"
			})).
			Return(&entity.Order{ID: uuid.New(), ProductID: productID, Quantity: 3, TotalPrice: decimal.RequireFromString("240"), Status: entity.OrderStatusPending}, nil)

		rec := serve(e, http.MethodPost, target, `{"quantity":3,"shipping_address":"12 Loom St"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		data := string(decodeEnvelope(t, rec).Data)
		assert.Contains(t, data, `"message":"Order placed successfully"`)
		assert.Contains(t, data, `"total_price":"240"`)
	})

	t.Run("omitted quantity is left to the use case", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		e, fx := newProductTestServer(t, principal)
		fx.orderUC.EXPECT().
			PlaceOrder(mock.Anything, principal, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
				return in.Quantity == nil
			})).
			Return(&entity.Order{ID: uuid.New(), Quantity: 1}, nil)

		rec := serve(e, http.MethodPost, target, `{"shipping_address":"12 Loom St"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	rejections := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "insufficient stock", err: domainerrors.ErrInsufficientStock, wantCode: "INSUFFICIENT_STOCK"},
		{name: "unavailable", err: domainerrors.ErrProductUnavailable, wantCode: "PRODUCT_UNAVAILABLE"},
		{name: "bad quantity", err: domainerrors.ErrInvalidQuantity, wantCode: "INVALID_QUANTITY"},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			principal := newTestPrincipal(entity.RoleCustomer)
			e, fx := newProductTestServer(t, principal)
			fx.orderUC.EXPECT().PlaceOrder(mock.Anything, principal, mock.Anything).Return(nil, errors.WithStack(tt.err))

			rec := serve(e, http.MethodPost, target, `{"quantity":9,"shipping_address":"12 Loom St"}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newProductTestServer(t, newTestPrincipal(entity.RoleCustomer))

		rec := serve(e, http.MethodPost, target, `{"quantity":"three"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
