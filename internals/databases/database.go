package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookshelf_backend/internals/configs"
	"bookshelf_backend/internals/constants"
)

var DB *gorm.DB

// ConnectDB membuka koneksi sesuai BOOKS_STORAGE (postgres|sqlite). Gagal = fatal.
func ConnectDB(driver string) {
	db, err := Open(driver)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Printf("✅ DB connected (%s).", driver)
}

// Open membuka *gorm.DB tanpa menyentuh variabel global.
func Open(driver string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: configs.NewGormLogger()}

	switch driver {
	case constants.StoragePostgres:
		log.Println("🔌 Koneksi ke PostgreSQL...")
		sslmode := configs.GetEnv("DB_SSLMODE", "require")
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bookshelf",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer
		}), cfg)

	case constants.StorageSQLite:
		path := configs.SQLitePath
		if path == "" {
			path = "books.db"
		}
		log.Printf("🔌 Membuka SQLite %s...", path)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=5000", path)), cfg)

	default:
		return nil, fmt.Errorf("driver %q tidak didukung", driver)
	}
}

// TunePool mengatur ukuran pool koneksi.
func TunePool(driver string) {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("⚠️ Tidak bisa ambil sql.DB: %v", err)
		return
	}
	if driver == constants.StorageSQLite {
		// satu penulis saja untuk SQLite
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Close menutup pool kalau DB pernah dibuka.
func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
