package route

import (
	"github.com/gofiber/fiber/v2"

	booksController "bookshelf_backend/internals/features/books/controller"
	"bookshelf_backend/internals/features/books/service"
)

// Panggil dengan: route.BooksRoutes(app, store)
// Hasil endpoint:
//
//	POST   /books
//	GET    /books
//	GET    /books/:bookId
//	PUT    /books/:bookId
//	DELETE /books/:bookId
func BooksRoutes(r fiber.Router, store *service.BookStore) {
	ctl := &booksController.BooksController{Store: store}

	books := r.Group("/books")
	books.Post("/", ctl.Create)
	books.Get("/", ctl.List)
	books.Get("/:bookId", ctl.GetByID)
	books.Put("/:bookId", ctl.Update)
	books.Delete("/:bookId", ctl.Delete)
}
