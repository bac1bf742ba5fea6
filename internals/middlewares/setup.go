package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"bookshelf_backend/internals/configs"
	"bookshelf_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global. Recovery paling luar supaya panic di middleware lain juga tertangkap.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(configs.CorsAllowOrigins))
	if configs.RateLimitMax > 0 {
		app.Use(GlobalRateLimiter(configs.RateLimitMax))
	}
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
