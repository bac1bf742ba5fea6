// file: internals/features/books/service/books_store.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"bookshelf_backend/internals/features/books/model"
)

const (
	tagReadPageWithinPageCount = "readpage_lte_pagecount"
	maxIDAttempts              = 5
)

// BookStore memegang koleksi buku (urutan insert dipertahankan).
// Semua akses lewat mutex; caller hanya menerima salinan.
// Koleksi di memori selalu sama dengan snapshot terakhir yang berhasil disimpan.
type BookStore struct {
	mu        sync.RWMutex
	books     []model.BookModel
	issued    map[string]struct{} // semua id yang pernah dipakai, termasuk yang sudah dihapus
	persister Persister

	validate *validator.Validate
	newID    func() string
	now      func() time.Time
}

// NewBookStore membangun store dan memuat koleksi awal dari persister (kalau ada).
func NewBookStore(ctx context.Context, opts ...Option) (*BookStore, error) {
	s := &BookStore{
		validate: newBookValidator(),
		issued:   make(map[string]struct{}),
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.persister != nil {
		loaded, err := s.persister.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		for _, b := range loaded {
			if _, dup := s.issued[b.BookID]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateID, b.BookID)
			}
			s.issued[b.BookID] = struct{}{}
		}
		s.books = loaded
		log.Printf("[STORE] %d buku dimuat dari penyimpanan", len(loaded))
	}
	return s, nil
}

func newBookValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(readPageWithinPageCount, model.BookInput{})
	return v
}

func readPageWithinPageCount(sl validator.StructLevel) {
	in := sl.Current().Interface().(model.BookInput)
	if in.BookPageCount != nil && in.BookReadPage != nil && *in.BookReadPage > *in.BookPageCount {
		sl.ReportError(in.BookReadPage, "readPage", "BookReadPage", tagReadPageWithinPageCount, "")
	}
}

// checkInput: nama dicek lebih dulu, baru batas readPage.
func (s *BookStore) checkInput(in model.BookInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	for _, fe := range ve {
		if fe.StructField() == "BookName" {
			return ErrMissingName
		}
	}
	for _, fe := range ve {
		if fe.Tag() == tagReadPageWithinPageCount {
			return ErrReadPageExceedsPageCount
		}
	}
	return err
}

func (s *BookStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *BookStore) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].BookID == id {
			return i
		}
	}
	return -1
}

// commit menyimpan next ke persister lalu menggantikan koleksi; dipanggil selagi mu dipegang.
// Kalau penyimpanan gagal, koleksi di memori tidak berubah.
func (s *BookStore) commit(ctx context.Context, next []model.BookModel) error {
	if s.persister != nil {
		snap := make([]model.BookModel, len(next))
		for i := range next {
			snap[i] = next[i].Clone()
		}
		if err := s.persister.Save(context.WithoutCancel(ctx), snap); err != nil {
			log.Printf("[STORE] ❌ gagal menyimpan koleksi (%d buku): %v", len(snap), err)
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	s.books = next
	return nil
}

// Create memvalidasi input, menambah buku di akhir koleksi, dan mengembalikan id baru.
func (s *BookStore) Create(ctx context.Context, in model.BookInput) (string, error) {
	if err := s.checkInput(in); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return "", err
	}
	now := s.timestamp()
	book := model.BookModel{
		BookID:         id,
		BookInsertedAt: now,
		BookUpdatedAt:  now,
	}
	in.ApplyTo(&book)

	next := make([]model.BookModel, len(s.books), len(s.books)+1)
	copy(next, s.books)
	if err := s.commit(ctx, append(next, book)); err != nil {
		return "", err
	}
	s.issued[id] = struct{}{}
	return id, nil
}

// uniqueID menolak id kosong dan id yang pernah dipakai (juga yang sudah dihapus).
func (s *BookStore) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if _, used := s.issued[id]; id != "" && !used {
			return id, nil
		}
	}
	return "", ErrDuplicateID
}

// Query mengembalikan ringkasan buku yang cocok dengan filter, urutan koleksi dipertahankan.
func (s *BookStore) Query(_ context.Context, f model.BookFilter) []model.BookSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.BookSummary, 0, len(s.books))
	for _, b := range s.books {
		if f.Match(b) {
			out = append(out, b.Summary())
		}
	}
	return out
}

// GetByID mengembalikan salinan lengkap record.
func (s *BookStore) GetByID(_ context.Context, id string) (model.BookModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.BookModel{}, ErrNotFound
	}
	return s.books[i].Clone(), nil
}

// Update mengganti semua field mutable. Validasi dicek sebelum pencarian id.
func (s *BookStore) Update(ctx context.Context, id string, in model.BookInput) error {
	if err := s.checkInput(in); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	book := s.books[i]
	in.ApplyTo(&book)
	book.BookUpdatedAt = s.timestamp()

	next := make([]model.BookModel, len(s.books))
	copy(next, s.books)
	next[i] = book
	return s.commit(ctx, next)
}

// Delete menghapus buku; urutan sisa koleksi tidak berubah.
func (s *BookStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	next := make([]model.BookModel, 0, len(s.books)-1)
	next = append(next, s.books[:i]...)
	return s.commit(ctx, append(next, s.books[i+1:]...))
}

// Len mengembalikan jumlah buku di koleksi.
func (s *BookStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
