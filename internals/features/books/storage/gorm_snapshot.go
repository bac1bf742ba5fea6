// file: internals/features/books/storage/gorm_snapshot.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookshelf_backend/internals/features/books/model"
)

// BookRow adalah bentuk tabel dari satu buku. book_position menyimpan urutan koleksi.
type BookRow struct {
	BookID        string  `gorm:"type:varchar(64);primaryKey;column:book_id"`
	BookPosition  int     `gorm:"not null;index;column:book_position"`
	BookName      string  `gorm:"type:text;not null;column:book_name"`
	BookYear      *int    `gorm:"column:book_year"`
	BookAuthor    *string `gorm:"type:text;column:book_author"`
	BookSummary   *string `gorm:"type:text;column:book_summary"`
	BookPublisher *string `gorm:"type:text;column:book_publisher"`
	BookPageCount *int    `gorm:"column:book_page_count"`
	BookReadPage  *int    `gorm:"column:book_read_page"`
	BookFinished  bool    `gorm:"not null;default:false;column:book_finished"`
	BookReading   *bool   `gorm:"column:book_reading"`

	BookInsertedAt time.Time `gorm:"not null;column:book_inserted_at"`
	BookUpdatedAt  time.Time `gorm:"not null;column:book_updated_at"`
}

func (BookRow) TableName() string { return "books" }

func rowFromModel(m model.BookModel, pos int) BookRow {
	return BookRow{
		BookID:         m.BookID,
		BookPosition:   pos,
		BookName:       m.BookName,
		BookYear:       m.BookYear,
		BookAuthor:     m.BookAuthor,
		BookSummary:    m.BookSummary,
		BookPublisher:  m.BookPublisher,
		BookPageCount:  m.BookPageCount,
		BookReadPage:   m.BookReadPage,
		BookFinished:   m.BookFinished,
		BookReading:    m.BookReading,
		BookInsertedAt: m.BookInsertedAt,
		BookUpdatedAt:  m.BookUpdatedAt,
	}
}

func (r BookRow) toModel() model.BookModel {
	return model.BookModel{
		BookID:         r.BookID,
		BookName:       r.BookName,
		BookYear:       r.BookYear,
		BookAuthor:     r.BookAuthor,
		BookSummary:    r.BookSummary,
		BookPublisher:  r.BookPublisher,
		BookPageCount:  r.BookPageCount,
		BookReadPage:   r.BookReadPage,
		BookFinished:   r.BookFinished,
		BookReading:    r.BookReading,
		BookInsertedAt: r.BookInsertedAt.UTC(),
		BookUpdatedAt:  r.BookUpdatedAt.UTC(),
	}
}

// GormSnapshotStore menyimpan koleksi ke tabel books.
// Save mengganti seluruh isi tabel dalam satu transaksi (tanpa tulis inkremental).
type GormSnapshotStore struct {
	DB        *gorm.DB
	BatchSize int
}

// NewGormSnapshotStore menjalankan AutoMigrate untuk tabel books.
func NewGormSnapshotStore(db *gorm.DB) (*GormSnapshotStore, error) {
	if db == nil {
		return nil, errors.New("gorm store: nil db")
	}
	if err := db.AutoMigrate(&BookRow{}); err != nil {
		return nil, fmt.Errorf("migrate books table: %w", err)
	}
	return &GormSnapshotStore{DB: db, BatchSize: 200}, nil
}

// Load membaca semua baris sesuai urutan posisi.
func (s *GormSnapshotStore) Load(ctx context.Context) ([]model.BookModel, error) {
	var rows []BookRow
	if err := s.DB.WithContext(ctx).Order("book_position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	out := make([]model.BookModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// Save mengganti isi tabel dengan snapshot.
func (s *GormSnapshotStore) Save(ctx context.Context, books []model.BookModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&BookRow{}).Error; err != nil {
			return fmt.Errorf("clear books: %w", err)
		}
		if len(books) == 0 {
			return nil
		}
		rows := make([]BookRow, 0, len(books))
		for i, b := range books {
			rows = append(rows, rowFromModel(b, i))
		}
		batch := s.BatchSize
		if batch <= 0 {
			batch = len(rows)
		}
		if err := tx.CreateInBatches(&rows, batch).Error; err != nil {
			return fmt.Errorf("insert books: %w", err)
		}
		return nil
	})
}

// Ping mengecek koneksi database (dipakai health check).
func (s *GormSnapshotStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
