// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"handloom/config"
	"handloom/internal/delivery/api/middleware"
	"handloom/internal/delivery/api/router/handler"
	deliverymiddleware "handloom/internal/delivery/middleware"
	"handloom/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	GroupHandler   *handler.GroupHandler
	MessageHandler *handler.MessageHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *deliverymiddleware.RateLimitMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	groupHandler   *handler.GroupHandler
	messageHandler *handler.MessageHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *deliverymiddleware.RateLimitMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		groupHandler:   params.GroupHandler,
		messageHandler: params.MessageHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")
	authenticated := r.authMiddleware.Authenticate

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register, r.rateLimiter.Handle)
		usersGroup.POST("/login", r.userHandler.Login, r.rateLimiter.Handle)
		usersGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.OptionalAuthenticate)
		usersGroup.GET("/me", r.userHandler.Me, authenticated)
		usersGroup.GET("", r.userHandler.ListUsers, authenticated)
		usersGroup.GET("/:id", r.userHandler.GetUser, authenticated)
		usersGroup.PATCH("/:id", r.userHandler.UpdateProfile, authenticated)
	}

	// Catalog reads need a session too; unlisted products only show to their seller.
	productsGroup := api.Group("/products", authenticated)
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productsGroup.GET("/:id/qr", r.productHandler.ProductQRCode)
		productsGroup.POST("/:id/place_order", r.productHandler.PlaceOrder)
	}

	ordersGroup := api.Group("/orders", authenticated)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	groupsGroup := api.Group("/groups", authenticated)
	{
		groupsGroup.POST("", r.groupHandler.CreateGroup)
		groupsGroup.GET("", r.groupHandler.ListGroups)
		groupsGroup.GET("/:id", r.groupHandler.GetGroup)
		groupsGroup.PATCH("/:id", r.groupHandler.UpdateGroup)
		groupsGroup.DELETE("/:id", r.groupHandler.DeleteGroup)
		groupsGroup.POST("/:id/join", r.groupHandler.JoinGroup)
		groupsGroup.POST("/:id/leave", r.groupHandler.LeaveGroup)
	}

	messagesGroup := api.Group("/messages", authenticated)
	{
		messagesGroup.POST("", r.messageHandler.SendMessage)
		messagesGroup.GET("", r.messageHandler.ListMessages)
		messagesGroup.GET("/conversations", r.messageHandler.Conversations)
		messagesGroup.GET("/stream", r.messageHandler.Stream)
		messagesGroup.GET("/:id", r.messageHandler.GetMessage)
		messagesGroup.POST("/:id/read", r.messageHandler.MarkRead)
		messagesGroup.DELETE("/:id", r.messageHandler.DeleteMessage)
	}

	devicesGroup := api.Group("/devices", authenticated)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
