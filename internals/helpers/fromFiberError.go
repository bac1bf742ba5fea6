package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"bookshelf_backend/internals/constants"
)

// FromFiberError mengubah error yang lolos dari handler (biasanya *fiber.Error)
// menjadi response JSON {status:"fail", message}.
// Jika bukan *fiber.Error, fallback ke 500 dengan pesan generik.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Fail(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return Fail(c, fiber.StatusInternalServerError, constants.MsgInternalError)
}
