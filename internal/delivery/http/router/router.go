// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizconnect/internal/delivery/http/middleware"
	"bizconnect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler      *handler.SystemHandler
	AuthHandler        *handler.AuthHandler
	ProfileHandler     *handler.ProfileHandler
	NewsHandler        *handler.NewsHandler
	UMKMHandler        *handler.UMKMHandler
	CartHandler        *handler.CartHandler
	TransactionHandler *handler.TransactionHandler
	ContactHandler     *handler.ContactHandler
	AdminUserHandler   *handler.AdminUserHandler
	AdminStatsHandler  *handler.AdminStatsHandler
	AuthMiddleware     *middleware.AuthMiddleware
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
	p := r.params

	// Health check endpoint
	e.GET("/health", p.SystemHandler.Health)

	api := e.Group("/api")
	api.GET("/about", p.SystemHandler.About)

	// Public content
	api.GET("/news", p.NewsHandler.List)
	api.GET("/news/:id", p.NewsHandler.Get)
	api.GET("/umkm", p.UMKMHandler.List)
	api.POST("/contact", p.ContactHandler.Submit)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/verify", p.AuthHandler.Verify, p.AuthMiddleware.Authenticate)
	}

	// Routes that require authentication
	profileGroup := api.Group("/profile")
	profileGroup.Use(p.AuthMiddleware.Authenticate)
	{
		profileGroup.GET("/me", p.ProfileHandler.Me)
		profileGroup.PUT("/update", p.ProfileHandler.Update)
		profileGroup.PUT("/password", p.ProfileHandler.ChangePassword)
		profileGroup.DELETE("/delete", p.ProfileHandler.Delete)
		// POST fallback for clients that cannot send DELETE
		profileGroup.POST("/delete", p.ProfileHandler.Delete)
	}

	cartGroup := api.Group("/cart")
	cartGroup.Use(p.AuthMiddleware.Authenticate)
	{
		cartGroup.GET("", p.CartHandler.Get)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PUT("/items", p.CartHandler.UpdateItem)
		cartGroup.DELETE("/stores/:storeId/items/:itemId", p.CartHandler.RemoveItem)
		cartGroup.POST("/checkout", p.CartHandler.Checkout)
	}

	transactionGroup := api.Group("/transactions")
	transactionGroup.Use(p.AuthMiddleware.Authenticate)
	{
		transactionGroup.POST("", p.TransactionHandler.Create)
		transactionGroup.GET("", p.TransactionHandler.ListMine)
	}

	// Admin routes require authentication and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", p.AdminUserHandler.List)
		adminGroup.POST("/users", p.AdminUserHandler.Create)
		adminGroup.PUT("/users/:id", p.AdminUserHandler.Update)
		adminGroup.DELETE("/users/:id", p.AdminUserHandler.Delete)

		adminGroup.GET("/news", p.NewsHandler.List)
		adminGroup.POST("/news", p.NewsHandler.Create)
		adminGroup.PUT("/news/:id", p.NewsHandler.Update)
		adminGroup.DELETE("/news/:id", p.NewsHandler.Delete)

		adminGroup.GET("/umkm", p.UMKMHandler.ListAll)
		adminGroup.POST("/umkm", p.UMKMHandler.Create)
		adminGroup.GET("/umkm/:id", p.UMKMHandler.Get)
		adminGroup.PUT("/umkm/:id", p.UMKMHandler.Update)
		adminGroup.DELETE("/umkm/:id", p.UMKMHandler.Delete)
		adminGroup.POST("/umkm/:id/approve", p.UMKMHandler.Approve)

		adminGroup.POST("/umkm/:id/products", p.UMKMHandler.AddCatalogItem)
		adminGroup.PUT("/umkm/:id/products/:pid", p.UMKMHandler.UpdateCatalogItem)
		adminGroup.DELETE("/umkm/:id/products/:pid", p.UMKMHandler.DeleteCatalogItem)

		adminGroup.GET("/stats", p.AdminStatsHandler.Stats)
		adminGroup.GET("/reports/transactions", p.AdminStatsHandler.TransactionsReport)
	}
}
