package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"handloom/config"
	"handloom/internal/delivery/api/middleware"
	"handloom/internal/delivery/api/router/handler"
	deliverymiddleware "handloom/internal/delivery/middleware"
	"handloom/internal/domain/entity"
	"handloom/internal/infra/metrics"
	"handloom/internal/infra/realtime"
	mockUsecase "handloom/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	userUC    *mockUsecase.MockUserUsecase
	productUC *mockUsecase.MockProductUsecase
	orderUC   *mockUsecase.MockOrderUsecase
}

func newTestRouter(t *testing.T) (*echo.Echo, routerFixtures) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Session:   &config.SessionConfig{CookieName: "sessionid"},
		RateLimit: &config.RateLimitConfig{Enabled: false},
		Metrics:   &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	fx := routerFixtures{
		userUC:    mockUsecase.NewMockUserUsecase(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
		orderUC:   mockUsecase.NewMockOrderUsecase(t),
	}

	r := NewRouter(RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Config: cfg, Logger: logger}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: fx.productUC,
			OrderUC:   fx.orderUC,
			Logger:    logger,
		}),
		OrderHandler: handler.NewOrderHandler(fx.orderUC),
		GroupHandler: handler.NewGroupHandler(mockUsecase.NewMockGroupUsecase(t)),
		MessageHandler: handler.NewMessageHandler(handler.MessageHandlerParams{
			MessageUC: mockUsecase.NewMockMessageUsecase(t),
			Hub:       realtime.NewHub(logger, nil),
			Logger:    logger,
		}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(fx.userUC, cfg),
		RateLimiter:    deliverymiddleware.NewRateLimitMiddleware(cfg, logger),
		Metrics:        metrics.New(),
		Config:         cfg,
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, fx
}

func TestRouter_RegistersRouteTable(t *testing.T) {
	e, _ := newTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"POST /api/users/register",
		"POST /api/users/login",
		"POST /api/users/logout",
		"GET /api/users/me",
		"GET /api/products",
		"POST /api/products/:id/place_order",
		"GET /api/products/:id/qr",
		"GET /api/orders",
		"GET /api/orders/:id",
		"POST /api/groups/:id/join",
		"POST /api/groups/:id/leave",
		"POST /api/messages",
		"GET /api/messages/conversations",
		"GET /api/messages/stream",
		"POST /api/messages/:id/read",
		"PUT /api/devices/:id/token",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRouter_OrdersRequireSession(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestRouter_SessionCookieReachesHandler(t *testing.T) {
	e, fx := newTestRouter(t)
	principal := &entity.Principal{UserID: uuid.New(), Role: entity.RoleCustomer, SessionID: "s-1"}
	fx.userUC.EXPECT().Authenticate(mock.Anything, "signed-token").Return(principal, nil)
	fx.orderUC.EXPECT().ListOrders(mock.Anything, principal).Return([]*entity.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "signed-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CatalogRequiresSession(t *testing.T) {
	for _, path := range []string{"/api/products", "/api/products/" + uuid.NewString(), "/api/products/" + uuid.NewString() + "/qr"} {
		t.Run(path, func(t *testing.T) {
			e, fx := newTestRouter(t)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			fx.productUC.AssertNotCalled(t, "ListAvailable", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRouter_CatalogWithSession(t *testing.T) {
	e, fx := newTestRouter(t)
	principal := &entity.Principal{UserID: uuid.New(), Role: entity.RoleCustomer, SessionID: "s-2"}
	fx.userUC.EXPECT().Authenticate(mock.Anything, "signed-token").Return(principal, nil)
	fx.productUC.EXPECT().
		ListAvailable(mock.Anything, principal, entity.ProductFilter{}).
		Return([]*entity.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer signed-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
