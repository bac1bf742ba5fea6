// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	booksRoute "bookshelf_backend/internals/features/books/route"
	"bookshelf_backend/internals/features/books/service"
)

var startTime time.Time

// SetupRoutes memasang base routes lalu route buku.
// pinger boleh nil (storage file/memory tidak punya koneksi untuk dicek).
func SetupRoutes(app *fiber.App, store *service.BookStore, storage string, pinger Pinger) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, store, storage, pinger)

	log.Println("[INFO] Mounting Books routes...")
	booksRoute.BooksRoutes(app, store)
}
