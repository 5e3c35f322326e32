package handler

import (
	"log/slog"
	"net/http"

	"handloom/internal/delivery/api/response"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	"handloom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	OrderUC   usecase.OrderUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog, including placing orders against a product.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	orderUC   usecase.OrderUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		orderUC:   params.OrderUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of a new listing.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category" validate:"max=100"`
	Image         string          `json:"image"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	IsAvailable   *bool           `json:"is_available"`
}

// UpdateProductRequest is a partial listing update.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	Image         *string          `json:"image"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsAvailable   *bool            `json:"is_available"`
}

// PlaceOrderRequest is the body of place_order. Validation of both fields
// happens in the order use case so their error codes stay specific.
type PlaceOrderRequest struct {
	Quantity        *int   `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
}

// PlaceOrderResponse is returned after an order is recorded.
type PlaceOrderResponse struct {
	Message string        `json:"message"`
	Order   *entity.Order `json:"order"`
}

// ListProducts returns available products, optionally filtered by category
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListAvailable(c.Request().Context(), deliverycontext.GetPrincipal(c), entity.ProductFilter{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct lists a new product for the calling seller
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), productID, &entity.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ProductQRCode streams a PNG QR code linking to the listing
func (h *ProductHandler) ProductQRCode(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.productUC.ProductQRCode(c.Request().Context(), deliverycontext.GetPrincipal(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// PlaceOrder buys units of the product for the caller
func (h *ProductHandler) PlaceOrder(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Malformed request body")
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.PlaceOrderInput{
		ProductID:       productID,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PlaceOrderResponse{
		Message: "Order placed successfully",
		Order:   order,
	})
}
