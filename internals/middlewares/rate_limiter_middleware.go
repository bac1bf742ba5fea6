package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"bookshelf_backend/internals/constants"
	helper "bookshelf_backend/internals/helpers"
)

// Global limiter: max request per menit per IP.
func GlobalRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.Fail(c, fiber.StatusTooManyRequests, constants.MsgTooManyRequests)
		},
	})
}
