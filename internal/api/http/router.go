package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace/internal/api/http/handlers"
	"github.com/spec-kit/marketplace/internal/auth"
)

// AuthRouteConfig bundles dependencies for the auth service routes.
type AuthRouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
}

// RegisterAuthRoutes wires the auth service HTTP routes.
func RegisterAuthRoutes(app *fiber.App, cfg AuthRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
}

// VendorRouteConfig bundles dependencies for the vendor service routes.
type VendorRouteConfig struct {
	Health         *handlers.HealthHandler
	Vendor         *handlers.VendorHandler
	AuthMiddleware *auth.Middleware
}

// RegisterVendorRoutes wires the vendor service HTTP routes. Every vendor
// endpoint sits behind the bearer-token middleware.
func RegisterVendorRoutes(app *fiber.App, cfg VendorRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	vendorGroup := app.Group("/vendor", cfg.AuthMiddleware.Handle)
	vendorGroup.Post("/profile", cfg.Vendor.CreateProfile)
	vendorGroup.Get("/profile", cfg.Vendor.GetProfile)
	vendorGroup.Get("/profile/:vendorId", cfg.Vendor.GetProfileByID)
	vendorGroup.Post("/stores", cfg.Vendor.CreateStore)
	vendorGroup.Get("/stores", cfg.Vendor.ListStores)
}
