package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/auth"
	"github.com/gstbill/billing-api/internal/application/usecase"
	"github.com/gstbill/billing-api/pkg/logger"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *usecase.CustomerUseCase
	StatsUC    *usecase.StatsUseCase
	AuthUC     *auth.UseCase
	Log        *logger.Logger
	JWTSecret  string
}

// Router registers the API routes. Everything under /api except /api/auth
// requires a valid Bearer session.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	statsHandler := NewStatsHandler(deps.StatsUC, deps.Log)
	protected.Get("/stats", statsHandler.GetStats)
}
