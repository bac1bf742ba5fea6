// file: internals/features/books/controller/books_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bookshelf_backend/internals/constants"
	dto "bookshelf_backend/internals/features/books/dto"
	"bookshelf_backend/internals/features/books/service"
	helper "bookshelf_backend/internals/helpers"
)

type BooksController struct {
	Store *service.BookStore
}

// pesan gagal per operasi
type failMessages struct {
	missingName    string
	readPage       string
	notFound       string
	invalidPayload string
}

var (
	createMessages = failMessages{
		missingName:    constants.MsgCreateMissingName,
		readPage:       constants.MsgCreateReadPageTooLarge,
		invalidPayload: constants.MsgCreateInvalidPayload,
	}
	updateMessages = failMessages{
		missingName:    constants.MsgUpdateMissingName,
		readPage:       constants.MsgUpdateReadPageTooLarge,
		notFound:       constants.MsgUpdateNotFound,
		invalidPayload: constants.MsgUpdateInvalidPayload,
	}
	getMessages    = failMessages{notFound: constants.MsgBookNotFound}
	deleteMessages = failMessages{notFound: constants.MsgDeleteNotFound}
)

// storeError memetakan error store ke status + pesan.
func storeError(c *fiber.Ctx, tag string, msgs failMessages, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingName):
		return helper.Fail(c, fiber.StatusBadRequest, msgs.missingName)
	case errors.Is(err, service.ErrReadPageExceedsPageCount):
		return helper.Fail(c, fiber.StatusBadRequest, msgs.readPage)
	case errors.Is(err, service.ErrNotFound):
		return helper.Fail(c, fiber.StatusNotFound, msgs.notFound)
	default:
		log.Printf("[BOOKS][%s] ❌ %v", tag, err)
		return helper.Fail(c, fiber.StatusInternalServerError, constants.MsgInternalError)
	}
}

// parseBookRequest: body non-JSON diperlakukan sebagai body kosong.
func parseBookRequest(c *fiber.Ctx) (dto.BookRequest, error) {
	var req dto.BookRequest
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	if len(c.Body()) == 0 || !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		return req, nil
	}
	if err := c.BodyParser(&req); err != nil {
		return req, err
	}
	return req, nil
}

// POST /books
func (h *BooksController) Create(c *fiber.Ctx) error {
	req, err := parseBookRequest(c)
	if err != nil {
		log.Printf("[BOOKS][CREATE] BodyParser error: %v", err)
		return helper.Fail(c, fiber.StatusBadRequest, createMessages.invalidPayload)
	}

	id, err := h.Store.Create(c.UserContext(), req.ToInput())
	if err != nil {
		return storeError(c, "CREATE", createMessages, err)
	}
	log.Printf("[BOOKS][CREATE] book_id=%s", id)

	return helper.SuccessWithCode(c, fiber.StatusCreated, constants.MsgBookCreated, dto.BookCreatedData{BookID: id})
}

// GET /books?name=&reading=&finished=
func (h *BooksController) List(c *fiber.Ctx) error {
	books := h.Store.Query(c.UserContext(), dto.FilterFromQuery(c))
	return helper.Success(c, "", dto.BookListData{Books: books})
}

// GET /books/:bookId
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	book, err := h.Store.GetByID(c.UserContext(), c.Params("bookId"))
	if err != nil {
		return storeError(c, "GET", getMessages, err)
	}
	return helper.Success(c, "", dto.BookDetailData{Book: dto.ToBookResponse(book)})
}

// PUT /books/:bookId
func (h *BooksController) Update(c *fiber.Ctx) error {
	req, err := parseBookRequest(c)
	if err != nil {
		log.Printf("[BOOKS][UPDATE] BodyParser error: %v", err)
		return helper.Fail(c, fiber.StatusBadRequest, updateMessages.invalidPayload)
	}

	id := c.Params("bookId")
	if err := h.Store.Update(c.UserContext(), id, req.ToInput()); err != nil {
		return storeError(c, "UPDATE", updateMessages, err)
	}
	log.Printf("[BOOKS][UPDATE] book_id=%s", id)

	return helper.Success(c, constants.MsgBookUpdated, nil)
}

// DELETE /books/:bookId
func (h *BooksController) Delete(c *fiber.Ctx) error {
	id := c.Params("bookId")
	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return storeError(c, "DELETE", deleteMessages, err)
	}
	log.Printf("[BOOKS][DELETE] book_id=%s", id)

	return helper.Success(c, constants.MsgBookDeleted, nil)
}
