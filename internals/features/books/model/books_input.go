package model

import "strings"

// BookInput berisi field yang boleh diisi caller saat create/update.
// id, finished, insertedAt dan updatedAt selalu diisi oleh store.
type BookInput struct {
	BookName      string  `validate:"required"`
	BookYear      *int
	BookAuthor    *string
	BookSummary   *string
	BookPublisher *string
	BookPageCount *int
	BookReadPage  *int
	BookReading   *bool
}

// ApplyTo menimpa semua field mutable (full replacement, bukan patch).
func (in BookInput) ApplyTo(m *BookModel) {
	m.BookName = in.BookName
	m.BookYear = cloneInt(in.BookYear)
	m.BookAuthor = cloneStr(in.BookAuthor)
	m.BookSummary = cloneStr(in.BookSummary)
	m.BookPublisher = cloneStr(in.BookPublisher)
	m.BookPageCount = cloneInt(in.BookPageCount)
	m.BookReadPage = cloneInt(in.BookReadPage)
	m.BookReading = cloneBool(in.BookReading)
	m.BookFinished = IsFinished(m.BookPageCount, m.BookReadPage)
}

// BookFilter: semua filter opsional, digabung dengan AND.
type BookFilter struct {
	Name     string // substring, case-insensitive; kosong = tidak difilter
	Reading  *bool
	Finished *bool
}

// Match mengecek satu record terhadap filter.
func (f BookFilter) Match(m BookModel) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(m.BookName), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil {
		// buku tanpa nilai reading tidak pernah cocok
		if m.BookReading == nil || *m.BookReading != *f.Reading {
			return false
		}
	}
	if f.Finished != nil && m.BookFinished != *f.Finished {
		return false
	}
	return true
}

// BookSummary adalah tampilan ringkas untuk list.
type BookSummary struct {
	BookID        string  `json:"id"`
	BookName      string  `json:"name"`
	BookPublisher *string `json:"publisher,omitempty"`
}
