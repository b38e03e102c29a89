// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"omnigate/internal/handlers"
	"omnigate/internal/middleware"
	"omnigate/internal/models"
	"omnigate/internal/repositories"
	"omnigate/internal/services/auth"
	"omnigate/internal/services/bridge"
	"omnigate/internal/services/feeengine"
	"omnigate/internal/services/gateway"
	"omnigate/internal/services/ledger"
	"omnigate/internal/services/rates"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Config carries the externally constructed collaborators.
type Config struct {
	Metrics       gateway.MetricsCollector
	BridgeBaseFee uint64
	BridgeFeeByte uint64
}

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	rateRepo := repositories.NewFeeRateRepository(db)
	auditRepo := repositories.NewFeeAuditRepository(db)

	// Services, in dependency order
	authService := auth.NewService(userRepo)
	rateService := rates.NewService(rateRepo, repositories.CacheService)
	engine := feeengine.New(rateService)
	assetLedger := ledger.NewService(models.CollectorAccount)
	messenger := bridge.NewOutbox(cfg.BridgeBaseFee, cfg.BridgeFeeByte)
	gatewayService := gateway.NewService(db, engine, assetLedger, messenger, auditRepo, cfg.Metrics)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	bridgeHandler := handlers.NewBridgeHandler(gatewayService)
	adminHandler := handlers.NewAdminHandler(rateService, gatewayService, auditRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)
	api.Post("/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)

	// Quotes are pure and public.
	api.Post("/bridge/quote", bridgeHandler.Quote)
	api.Post("/bridge/quote-fixed", bridgeHandler.QuoteFixed)

	// Authenticated surface
	authed := api.Group("", authMiddleware.Handler)
	authed.Post("/auth/logout", authHandler.Logout)

	sends := authed.Group("/bridge", middleware.HasPermission(models.PermissionBridgeSend))
	sends.Post("/send", bridgeHandler.Send)
	sends.Post("/send-fixed", bridgeHandler.SendFixed)

	// Owner surface
	admin := authed.Group("/admin", middleware.HasPermission(models.PermissionFeeAdmin))
	admin.Get("/fees", adminHandler.GetRates)
	admin.Put("/fees/default", adminHandler.SetDefaultRate)
	admin.Put("/fees/assets/:asset", adminHandler.SetAssetRate)
	admin.Delete("/fees/assets/:asset", adminHandler.RemoveAssetRate)
	admin.Post("/fees/withdraw", adminHandler.WithdrawFees)
	admin.Get("/audit", adminHandler.GetAuditTrail)
}
