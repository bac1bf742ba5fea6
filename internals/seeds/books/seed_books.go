package books

import (
	"context"
	"fmt"
	"log"
	"os"

	jsoniter "github.com/json-iterator/go"

	dto "bookshelf_backend/internals/features/books/dto"
	"bookshelf_backend/internals/features/books/service"
)

// SeedBooksFromJSON membaca array body POST /books dari file dan membuat tiap buku lewat store,
// jadi validasi dan finished tetap berlaku. Entri tidak valid dicatat lalu dilewati.
// Seeder hanya jalan kalau koleksi masih kosong.
func SeedBooksFromJSON(ctx context.Context, store *service.BookStore, filePath string) (int, error) {
	if store.Len() > 0 {
		log.Printf("ℹ️ Koleksi sudah berisi %d buku, seeder dilewati", store.Len())
		return 0, nil
	}

	log.Println("📥 Membaca file:", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.BookRequest
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	created := 0
	for i, seed := range seeds {
		id, err := store.Create(ctx, seed.ToInput())
		if err != nil {
			if service.IsValidation(err) {
				log.Printf("❌ Seed #%d (%q) dilewati: %v", i, seed.Name, err)
				continue
			}
			return created, err
		}
		created++
		log.Printf("✅ Berhasil insert '%s' (%s)", seed.Name, id)
	}
	return created, nil
}
