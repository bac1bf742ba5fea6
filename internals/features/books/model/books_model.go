// file: internals/features/books/model/books_model.go
package model

import "time"

// BookModel adalah satu record buku di koleksi.
// Field opsional berupa pointer supaya "tidak diisi" bisa dibedakan dari nilai nol.
type BookModel struct {
	BookID        string  `json:"id"`
	BookName      string  `json:"name"`
	BookYear      *int    `json:"year,omitempty"`
	BookAuthor    *string `json:"author,omitempty"`
	BookSummary   *string `json:"summary,omitempty"`
	BookPublisher *string `json:"publisher,omitempty"`
	BookPageCount *int    `json:"pageCount,omitempty"`
	BookReadPage  *int    `json:"readPage,omitempty"`
	BookFinished  bool    `json:"finished"`
	BookReading   *bool   `json:"reading,omitempty"`

	BookInsertedAt time.Time `json:"insertedAt"`
	BookUpdatedAt  time.Time `json:"updatedAt"`
}

// Clone menyalin record termasuk isi pointer-nya, jadi salinan tidak berbagi memori dengan store.
func (m BookModel) Clone() BookModel {
	out := m
	out.BookYear = cloneInt(m.BookYear)
	out.BookAuthor = cloneStr(m.BookAuthor)
	out.BookSummary = cloneStr(m.BookSummary)
	out.BookPublisher = cloneStr(m.BookPublisher)
	out.BookPageCount = cloneInt(m.BookPageCount)
	out.BookReadPage = cloneInt(m.BookReadPage)
	out.BookReading = cloneBool(m.BookReading)
	return out
}

// Summary memproyeksikan record ke tampilan list {id, name, publisher}.
func (m BookModel) Summary() BookSummary {
	return BookSummary{
		BookID:        m.BookID,
		BookName:      m.BookName,
		BookPublisher: cloneStr(m.BookPublisher),
	}
}

// IsFinished: true kalau readPage == pageCount. Dua-duanya kosong juga dianggap sama.
func IsFinished(pageCount, readPage *int) bool {
	if pageCount == nil || readPage == nil {
		return pageCount == nil && readPage == nil
	}
	return *pageCount == *readPage
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
