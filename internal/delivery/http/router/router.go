// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	CatalogHandler       *handler.CatalogHandler
	OrderHandler         *handler.OrderHandler
	CustomerHandler      *handler.CustomerHandler
	DeliveryAgentHandler *handler.DeliveryAgentHandler
	ReviewHandler        *handler.ReviewHandler
	MessageHandler       *handler.MessageHandler
	EventHandler         *handler.EventHandler
	AuthMiddleware       *middleware.AuthMiddleware
	RequestIDMiddleware  *middleware.RequestIDMiddleware
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
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.params.AuthMiddleware.Authenticate
	admin := r.params.AuthMiddleware.RequireAdmin

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.GET("/confirm/:token", r.params.AuthHandler.Confirm)
		authGroup.POST("/confirmation-code", r.params.AuthHandler.RequestConfirmationCode)
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.GET("/token/:token", r.params.AuthHandler.ValidateToken)
		authGroup.PUT("/password", r.params.AuthHandler.ResetPassword)
	}

	// Caller profile routes
	profileGroup := e.Group("/profile", authenticate)
	{
		profileGroup.GET("", r.params.AuthHandler.Profile)
		profileGroup.PUT("", r.params.AuthHandler.UpdateProfile)
		profileGroup.POST("/password/validate", r.params.AuthHandler.ValidatePassword)
		profileGroup.PUT("/password", r.params.AuthHandler.UpdateOwnPassword)
	}

	// Public catalog reads; mutations are admin-gated
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.params.CatalogHandler.ListCategories)
		categoryGroup.GET("/:id", r.params.CatalogHandler.GetCategory)
		categoryGroup.POST("", r.params.CatalogHandler.CreateCategory, authenticate, admin)
		categoryGroup.PUT("/:id", r.params.CatalogHandler.UpdateCategory, authenticate, admin)
		categoryGroup.PATCH("/:id/visibility", r.params.CatalogHandler.ToggleCategoryVisibility, authenticate, admin)
	}

	subCategoryGroup := e.Group("/subcategories")
	{
		subCategoryGroup.GET("", r.params.CatalogHandler.ListSubCategories)
		subCategoryGroup.GET("/:id", r.params.CatalogHandler.GetSubCategory)
		subCategoryGroup.POST("", r.params.CatalogHandler.CreateSubCategory, authenticate, admin)
		subCategoryGroup.PUT("/:id", r.params.CatalogHandler.UpdateSubCategory, authenticate, admin)
		subCategoryGroup.PATCH("/:id/visibility", r.params.CatalogHandler.ToggleSubCategoryVisibility, authenticate, admin)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.CatalogHandler.ListProducts)
		productGroup.GET("/:id", r.params.CatalogHandler.GetProduct)
		productGroup.POST("", r.params.CatalogHandler.CreateProduct, authenticate, admin)
		productGroup.PUT("/:id", r.params.CatalogHandler.UpdateProduct, authenticate, admin)
		productGroup.PATCH("/:id/availability", r.params.CatalogHandler.ToggleProductAvailability, authenticate, admin)
		productGroup.PATCH("/:id/offer", r.params.CatalogHandler.ToggleProductOffer, authenticate, admin)
	}

	// Orders: role scoping happens in the usecase layer
	orderGroup := e.Group("/orders", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.ChangeStatus)
		orderGroup.PATCH("/:id/delivery-man", r.params.OrderHandler.AssignAgent, admin)
		orderGroup.PUT("/:id/products", r.params.OrderHandler.UpdateLines, admin)
		orderGroup.GET("/charts/count", r.params.OrderHandler.ChartCount, admin)
		orderGroup.GET("/charts/revenue", r.params.OrderHandler.ChartRevenue, admin)
	}

	// Customer back office + self-service
	customerGroup := e.Group("/customers", authenticate)
	{
		customerGroup.GET("", r.params.CustomerHandler.List, admin)
		customerGroup.GET("/orders", r.params.CustomerHandler.OwnOrders)
	}

	// Delivery agent management and self-service
	agentGroup := e.Group("/delivery-men", authenticate)
	{
		agentGroup.GET("", r.params.DeliveryAgentHandler.List, admin)
		agentGroup.POST("", r.params.DeliveryAgentHandler.Create, admin)
		agentGroup.PATCH("/:id/status", r.params.DeliveryAgentHandler.ToggleStatus, admin)
		agentGroup.PATCH("/availability", r.params.DeliveryAgentHandler.ToggleOwnAvailability)
		agentGroup.GET("/orders", r.params.DeliveryAgentHandler.Orders)
	}

	// Reviews: public listing, customer self-service, admin publishing
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.params.ReviewHandler.ListVisible)
		reviewGroup.POST("", r.params.ReviewHandler.Create, authenticate)
		reviewGroup.GET("/own", r.params.ReviewHandler.GetOwn, authenticate)
		reviewGroup.PUT("/own", r.params.ReviewHandler.Update, authenticate)
		reviewGroup.DELETE("/own", r.params.ReviewHandler.Delete, authenticate)
		reviewGroup.PATCH("/:id/visibility", r.params.ReviewHandler.ToggleVisibility, authenticate, admin)
	}

	// Storefront announcements
	messageGroup := e.Group("/messages")
	{
		messageGroup.GET("", r.params.MessageHandler.List)
		messageGroup.POST("", r.params.MessageHandler.Create, authenticate, admin)
		messageGroup.PUT("/:id", r.params.MessageHandler.Update, authenticate, admin)
		messageGroup.DELETE("/:id", r.params.MessageHandler.Delete, authenticate, admin)
		messageGroup.PATCH("/:id/visibility", r.params.MessageHandler.ToggleVisibility, authenticate, admin)
	}

	// Live event stream for the storefront and back office
	e.GET("/events", r.params.EventHandler.Stream)
}
