package seeds

import (
	"context"
	"log"

	"bookshelf_backend/internals/features/books/service"
	booksSeed "bookshelf_backend/internals/seeds/books"
)

// RunAllSeeds menjalankan semua seeder. Path kosong = seeder dilewati.
func RunAllSeeds(ctx context.Context, store *service.BookStore, booksSeedFile string) {
	if booksSeedFile == "" {
		return
	}

	//* Books
	n, err := booksSeed.SeedBooksFromJSON(ctx, store, booksSeedFile)
	if err != nil {
		log.Printf("❌ Seeder buku gagal: %v", err)
		return
	}
	log.Printf("✅ Seeder buku selesai, %d buku ditambahkan", n)
}
