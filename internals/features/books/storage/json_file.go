// file: internals/features/books/storage/json_file.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"

	"bookshelf_backend/internals/features/books/model"
	"bookshelf_backend/internals/helpers/dbtime"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// fileRecord adalah bentuk satu buku di file data; timestamp ditulis dengan format API (ISOMillis).
type fileRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Year       *int    `json:"year,omitempty"`
	Author     *string `json:"author,omitempty"`
	Summary    *string `json:"summary,omitempty"`
	Publisher  *string `json:"publisher,omitempty"`
	PageCount  *int    `json:"pageCount,omitempty"`
	ReadPage   *int    `json:"readPage,omitempty"`
	Finished   bool    `json:"finished"`
	Reading    *bool   `json:"reading,omitempty"`
	InsertedAt string  `json:"insertedAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func recordFromModel(m model.BookModel) fileRecord {
	return fileRecord{
		ID:         m.BookID,
		Name:       m.BookName,
		Year:       m.BookYear,
		Author:     m.BookAuthor,
		Summary:    m.BookSummary,
		Publisher:  m.BookPublisher,
		PageCount:  m.BookPageCount,
		ReadPage:   m.BookReadPage,
		Finished:   m.BookFinished,
		Reading:    m.BookReading,
		InsertedAt: dbtime.FormatISO(m.BookInsertedAt),
		UpdatedAt:  dbtime.FormatISO(m.BookUpdatedAt),
	}
}

// toModel menerima ISOMillis maupun RFC3339 biasa (file lama).
func (r fileRecord) toModel() (model.BookModel, error) {
	insertedAt, err := time.Parse(time.RFC3339Nano, r.InsertedAt)
	if err != nil {
		return model.BookModel{}, fmt.Errorf("book %q insertedAt: %w", r.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return model.BookModel{}, fmt.Errorf("book %q updatedAt: %w", r.ID, err)
	}
	return model.BookModel{
		BookID:         r.ID,
		BookName:       r.Name,
		BookYear:       r.Year,
		BookAuthor:     r.Author,
		BookSummary:    r.Summary,
		BookPublisher:  r.Publisher,
		BookPageCount:  r.PageCount,
		BookReadPage:   r.ReadPage,
		BookFinished:   r.Finished,
		BookReading:    r.Reading,
		BookInsertedAt: insertedAt.UTC(),
		BookUpdatedAt:  updatedAt.UTC(),
	}, nil
}

// JSONFileStore menyimpan seluruh koleksi sebagai array JSON di satu file.
// Setiap Save menulis ulang file secara penuh.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore memastikan direktori file ada.
func NewJSONFileStore(path string) (*JSONFileStore, error) {
	if path == "" {
		return nil, errors.New("json store: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &JSONFileStore{path: path}, nil
}

// Path mengembalikan lokasi file.
func (s *JSONFileStore) Path() string { return s.path }

// Load membaca file; file yang belum ada berarti koleksi kosong.
func (s *JSONFileStore) Load(_ context.Context) ([]model.BookModel, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.BookModel{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return []model.BookModel{}, nil
	}

	var records []fileRecord
	if err := jsonAPI.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	books := make([]model.BookModel, 0, len(records))
	for _, r := range records {
		b, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.path, err)
		}
		books = append(books, b)
	}
	return books, nil
}

// Save menulis ke file sementara lalu rename, supaya pembaca tidak pernah melihat file setengah jadi.
func (s *JSONFileStore) Save(_ context.Context, books []model.BookModel) error {
	records := make([]fileRecord, 0, len(books))
	for _, b := range books {
		records = append(records, recordFromModel(b))
	}
	raw, err := jsonAPI.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
