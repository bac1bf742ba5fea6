package service

import "errors"

var (
	// ErrMissingName is returned when a create/update input has no name.
	ErrMissingName = errors.New("books: name is required")

	// ErrReadPageExceedsPageCount is returned when readPage is greater than pageCount.
	ErrReadPageExceedsPageCount = errors.New("books: readPage must not exceed pageCount")

	// ErrNotFound is returned when no book carries the requested id.
	ErrNotFound = errors.New("books: book not found")

	// ErrPersistence wraps any failure of the backing store.
	ErrPersistence = errors.New("books: persisting the collection failed")

	// ErrDuplicateID is returned when the loaded collection or the id generator yields an id twice.
	ErrDuplicateID = errors.New("books: duplicate book id")
)

// IsValidation reports whether err is one of the client input errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingName) || errors.Is(err, ErrReadPageExceedsPageCount)
}
