// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mart/internal/delivery/api/middleware"
	"mart/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/join", r.authHandler.Join)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// The catalog is public to browse; adding to it requires a login.
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.FindProducts)
		productsGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
	}

	cartsGroup := e.Group("/carts")
	cartsGroup.Use(r.authMiddleware.Authenticate)
	{
		cartsGroup.GET("", r.cartHandler.FindCart)
		cartsGroup.POST("/products", r.cartHandler.AddProduct)
		cartsGroup.PATCH("/products", r.cartHandler.UpdateProduct)
		cartsGroup.DELETE("/products/:productId", r.cartHandler.DeleteProduct)
	}

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.FindOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.FindOrder)
		ordersGroup.GET("/:orderId/receipt", r.orderHandler.OrderReceipt)
	}
}
