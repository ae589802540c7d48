package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"portfolioku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain (order matters:
// recovery first so panics inside the others are still caught).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
