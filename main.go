package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"bookshelf_backend/internals/configs"
	"bookshelf_backend/internals/constants"
	database "bookshelf_backend/internals/databases"
	"bookshelf_backend/internals/features/books/service"
	"bookshelf_backend/internals/features/books/storage"
	middlewares "bookshelf_backend/internals/middlewares"
	routes "bookshelf_backend/internals/route"
	"bookshelf_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	ctx := context.Background()
	store, pinger := buildStore(ctx)
	seeds.RunAllSeeds(ctx, store, configs.BooksSeedFile)

	app := fiber.New(configs.FiberConfig())

	middlewares.SetupMiddlewares(app)

	// ✅ Routes
	routes.SetupRoutes(app, store, configs.BooksStorage, pinger)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Server running on http://localhost:%s", configs.AppPort)
		if err := app.Listen("0.0.0.0:" + configs.AppPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)

	database.Close()
}

// buildStore memilih backend penyimpanan dari BOOKS_STORAGE lalu memuat koleksi awal.
// Semua kegagalan di sini fatal (masih fase startup).
func buildStore(ctx context.Context) (*service.BookStore, routes.Pinger) {
	var (
		opts   []service.Option
		pinger routes.Pinger
	)

	switch configs.BooksStorage {
	case constants.StorageFile:
		fileStore, err := storage.NewJSONFileStore(configs.BooksDataFile)
		if err != nil {
			log.Fatalf("❌ Gagal menyiapkan file data: %v", err)
		}
		log.Printf("📄 Data buku disimpan di %s", fileStore.Path())
		opts = append(opts, service.WithPersister(fileStore))

	case constants.StoragePostgres, constants.StorageSQLite:
		database.ConnectDB(configs.BooksStorage)
		database.TunePool(configs.BooksStorage)
		gormStore, err := storage.NewGormSnapshotStore(database.DB)
		if err != nil {
			log.Fatalf("❌ Gagal migrasi tabel books: %v", err)
		}
		opts = append(opts, service.WithPersister(gormStore))
		pinger = gormStore

	case constants.StorageMemory:
		log.Println("⚠️ Storage memory: data hilang saat proses berhenti")

	default:
		log.Fatalf("❌ BOOKS_STORAGE=%q tidak dikenal (file|postgres|sqlite|memory)", configs.BooksStorage)
	}

	store, err := service.NewBookStore(ctx, opts...)
	if err != nil {
		log.Fatalf("❌ Gagal memuat koleksi buku: %v", err)
	}
	return store, pinger
}
