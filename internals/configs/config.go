package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"bookshelf_backend/internals/constants"
)

var (
	AppPort          string
	BooksStorage     string
	BooksDataFile    string
	BooksSeedFile    string
	SQLitePath       string
	RateLimitMax     int
	CorsAllowOrigins string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	AppPort = GetEnv("PORT", "9000")
	BooksStorage = strings.ToLower(strings.TrimSpace(GetEnv("BOOKS_STORAGE", constants.StorageFile)))
	BooksDataFile = GetEnv("BOOKS_DATA_FILE", "data.json")
	BooksSeedFile = GetEnv("BOOKS_SEED_FILE")
	SQLitePath = GetEnv("SQLITE_PATH", "books.db")
	RateLimitMax = GetEnvInt("RATE_LIMIT_MAX", 100)
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "*")

	log.Printf("✅ Storage buku: %s", BooksStorage)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt: nilai yang tidak bisa di-parse jatuh ke default.
func GetEnvInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan angka, pakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[DB][INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[DB][WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[DB][ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[DB][ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[DB][SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[DB][QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
