package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"legisq_backend/internals/middlewares/logger"
	"legisq_backend/internals/middlewares/metrics"
)

// SetupMiddlewares memasang middleware global dengan urutan tetap.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(metrics.Middleware())
	app.Use(GlobalRateLimiter())
}
