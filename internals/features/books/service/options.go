package service

import (
	"context"
	"errors"
	"time"

	"bookshelf_backend/internals/features/books/model"
)

// Persister menyimpan dan memuat seluruh koleksi sebagai satu snapshot.
type Persister interface {
	Load(ctx context.Context) ([]model.BookModel, error)
	Save(ctx context.Context, books []model.BookModel) error
}

// Option defines a functional option for configuring a BookStore.
type Option func(*BookStore) error

// WithPersister mirrors every mutation into p and loads the initial collection from it.
func WithPersister(p Persister) Option {
	return func(s *BookStore) error {
		if p == nil {
			return errors.New("books: nil persister")
		}
		s.persister = p
		return nil
	}
}

// WithIDGenerator replaces the uuid v4 generator.
// Ids the generator repeats (including ids of deleted books) are retried, then rejected with ErrDuplicateID.
func WithIDGenerator(fn func() string) Option {
	return func(s *BookStore) error {
		if fn == nil {
			return errors.New("books: nil id generator")
		}
		s.newID = fn
		return nil
	}
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *BookStore) error {
		if fn == nil {
			return errors.New("books: nil clock")
		}
		s.now = fn
		return nil
	}
}
