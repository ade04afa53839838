package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Cart           *handlers.CartHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)

	// public catalog reads; /buscar before /:id so it is not captured as an id
	api.Get("/productos", cfg.Products.List)
	api.Get("/productos/buscar", cfg.Products.Search)
	api.Get("/productos/categoria/:categoria", cfg.Products.ListByCategory)
	api.Get("/productos/:id", cfg.Products.Get)

	// admin writes carry the guard per route so the public reads above stay open
	api.Post("/productos", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Products.Create)
	api.Put("/productos/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Products.Update)
	api.Delete("/productos/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Products.Delete)

	api.Post("/carrito", cfg.Cart.Create)
	api.Get("/carrito/:id", cfg.Cart.Get)
	api.Post("/carrito/:id/items", cfg.Cart.AddItem)
	api.Delete("/carrito/:id", cfg.Cart.Clear)

	api.Post("/contacto", cfg.Contact.Submit)
}
