// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS dari daftar origin (dipisah koma).
func CorsMiddleware(allowOrigins string) fiber.Handler {
	origins := make([]string, 0)
	for _, o := range strings.Split(allowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ", "),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		// credentials tidak boleh dipadukan dengan wildcard origin
		AllowCredentials: origins[0] != "*",
	})
}
