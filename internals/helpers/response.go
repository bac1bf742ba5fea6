package helper

import (
	"github.com/gofiber/fiber/v2"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// ✅ Success Response (default 200). message/data kosong tidak ikut dikirim.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{"status": StatusSuccess}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// ❌ Fail Response: {status:"fail", message}
func Fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  StatusFail,
		"message": message,
	})
}
