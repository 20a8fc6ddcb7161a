// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"subul/internal/delivery/http/middleware"
	"subul/internal/delivery/http/router/handler"
	"subul/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	MerchantHandler     *handler.MerchantHandler
	ProductHandler      *handler.ProductHandler
	InventoryHandler    *handler.InventoryHandler
	OrderHandler        *handler.OrderHandler
	DeliveryHandler     *handler.DeliveryHandler
	PaymentHandler      *handler.PaymentHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	ActivityMiddleware  *middleware.ActivityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.Use(r.params.ActivityMiddleware.RecordAPILog)

	authenticate := r.params.AuthMiddleware.Authenticate
	adminOnly := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)
	merchantOrAdmin := r.params.AuthMiddleware.RequireRole(entity.RoleMerchant, entity.RoleAdmin)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.GET("", r.params.UserHandler.ListUsers, adminOnly)
		userGroup.GET("/:id", r.params.UserHandler.GetUser, adminOnly)
		userGroup.PATCH("/:id", r.params.UserHandler.UpdateUser, adminOnly)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser, adminOnly)
	}

	// Merchant routes
	merchantGroup := api.Group("/merchants")
	merchantGroup.Use(authenticate)
	{
		merchantGroup.POST("", r.params.MerchantHandler.CreateMerchant)
		merchantGroup.GET("", r.params.MerchantHandler.ListMerchants, adminOnly)
		merchantGroup.GET("/:id", r.params.MerchantHandler.GetMerchant)
		merchantGroup.PATCH("/:id", r.params.MerchantHandler.UpdateMerchant, merchantOrAdmin)
		merchantGroup.DELETE("/:id", r.params.MerchantHandler.DeleteMerchant, adminOnly)
	}

	// Product routes. Reads are public, writes require a merchant account.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)
		productGroup.POST("", r.params.ProductHandler.CreateProduct, authenticate, merchantOrAdmin)
		productGroup.PATCH("/:id", r.params.ProductHandler.UpdateProduct, authenticate, merchantOrAdmin)
		productGroup.DELETE("/:id", r.params.ProductHandler.DeleteProduct, authenticate, merchantOrAdmin)
	}

	// Inventory routes
	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(authenticate)
	{
		inventoryGroup.POST("", r.params.InventoryHandler.CreateInventory, merchantOrAdmin)
		inventoryGroup.GET("/:product_id", r.params.InventoryHandler.GetInventoryByProduct)
		inventoryGroup.PATCH("/:id", r.params.InventoryHandler.UpdateInventory, merchantOrAdmin)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PATCH("/:id", r.params.OrderHandler.UpdateOrder, merchantOrAdmin)
	}

	// Delivery routes
	deliveryGroup := api.Group("/deliveries")
	deliveryGroup.Use(authenticate)
	{
		deliveryGroup.POST("", r.params.DeliveryHandler.CreateDelivery, merchantOrAdmin)
		deliveryGroup.GET("/:order_id", r.params.DeliveryHandler.GetDeliveryByOrder)
		deliveryGroup.PATCH("/:id", r.params.DeliveryHandler.UpdateDelivery, merchantOrAdmin)
	}

	// Payment routes
	paymentGroup := api.Group("/payments")
	paymentGroup.Use(authenticate)
	{
		paymentGroup.POST("", r.params.PaymentHandler.CreatePayment)
		paymentGroup.GET("/:order_id", r.params.PaymentHandler.GetPaymentByOrder)
		paymentGroup.PATCH("/:id", r.params.PaymentHandler.UpdatePayment)
	}

	// Notification routes
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(authenticate)
	{
		notificationGroup.POST("", r.params.NotificationHandler.CreateNotification)
		notificationGroup.GET("", r.params.NotificationHandler.ListNotifications)
		notificationGroup.PUT("/:id/read", r.params.NotificationHandler.MarkNotificationRead)
	}
}
