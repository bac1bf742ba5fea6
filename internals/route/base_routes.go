package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bookshelf_backend/internals/features/books/service"
)

// Pinger dipenuhi oleh storage yang punya koneksi jaringan/database.
type Pinger interface {
	Ping(ctx context.Context) error
}

func BaseRoutes(app *fiber.App, store *service.BookStore, storage string, pinger Pinger) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bookshelf API berjalan 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		serverStatus := "OK"
		storageStatus := "Connected"
		httpStatus := fiber.StatusOK

		if pinger != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				serverStatus = "DOWN"
				storageStatus = "Storage connection error"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"storage":        storage,
			"storage_status": storageStatus,
			"books":          store.Len(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
