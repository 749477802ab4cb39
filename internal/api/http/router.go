package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/http/handlers"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Suppliers      *handlers.SuppliersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Reads on the catalog are anonymous;
// full writes require Admin, partial updates require any authenticated
// user.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Authenticate, cfg.Auth.Logout)
	authGroup.Post("/promote/:userId",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Auth.Promote)

	products := app.Group("/api/products")
	products.Get("/", cfg.Products.List)
	products.Get("/search", cfg.Products.Search)
	products.Get("/:id", cfg.Products.Get)
	products.Post("/",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Products.Create)
	products.Put("/:id",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Products.Update)
	products.Patch("/:id",
		cfg.AuthMiddleware.Authenticate, auth.RequireAuthenticated(), cfg.Products.Patch)
	products.Delete("/:id",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Products.Delete)

	suppliers := app.Group("/api/suppliers")
	suppliers.Get("/", cfg.Suppliers.List)
	suppliers.Get("/:id", cfg.Suppliers.Get)
	suppliers.Post("/",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Suppliers.Create)
	suppliers.Put("/:id",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Suppliers.Update)
	suppliers.Patch("/:id",
		cfg.AuthMiddleware.Authenticate, auth.RequireAuthenticated(), cfg.Suppliers.Patch)
	suppliers.Delete("/:id",
		cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin), cfg.Suppliers.Delete)
}
