package handlers

import (
	"omnigate/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck handles GET /api/health requests.
func HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	sqlDB, err := repositories.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}

	if repositories.CacheService != nil {
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = "unreachable"
		}
	}

	code := fiber.StatusOK
	if status["status"] != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(status)
}
