// file: internals/features/books/dto/books_dto.go
package dto

import (
	"github.com/gofiber/fiber/v2"

	model "bookshelf_backend/internals/features/books/model"
	helper "bookshelf_backend/internals/helpers"
	"bookshelf_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST
   ========================================================= */

// BookRequest dipakai untuk POST dan PUT (body sama).
type BookRequest struct {
	Name      string  `json:"name"`
	Year      *int    `json:"year,omitempty"`
	Author    *string `json:"author,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
	PageCount *int    `json:"pageCount,omitempty"`
	ReadPage  *int    `json:"readPage,omitempty"`
	Reading   *bool   `json:"reading,omitempty"`
}

func (r *BookRequest) ToInput() model.BookInput {
	return model.BookInput{
		BookName:      r.Name,
		BookYear:      r.Year,
		BookAuthor:    r.Author,
		BookSummary:   r.Summary,
		BookPublisher: r.Publisher,
		BookPageCount: r.PageCount,
		BookReadPage:  r.ReadPage,
		BookReading:   r.Reading,
	}
}

/* =========================================================
   QUERY (LIST)
   ========================================================= */

// FilterFromQuery membaca ?name=&reading=&finished=.
// reading/finished dianggap ada walaupun nilainya kosong.
func FilterFromQuery(c *fiber.Ctx) model.BookFilter {
	args := c.Context().QueryArgs()
	f := model.BookFilter{Name: c.Query("name")}
	if args.Has("reading") {
		v := helper.NumericTruthy(c.Query("reading"))
		f.Reading = &v
	}
	if args.Has("finished") {
		v := helper.NumericTruthy(c.Query("finished"))
		f.Finished = &v
	}
	return f
}

/* =========================================================
   RESPONSE
   ========================================================= */

type BookResponse struct {
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

func ToBookResponse(m model.BookModel) BookResponse {
	return BookResponse{
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

type BookCreatedData struct {
	BookID string `json:"bookId"`
}

type BookListData struct {
	Books []model.BookSummary `json:"books"`
}

type BookDetailData struct {
	Book BookResponse `json:"book"`
}
