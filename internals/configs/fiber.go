package configs

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	helper "bookshelf_backend/internals/helpers"
)

// FiberConfig dipakai main dan test supaya encoder JSON dan error handler selalu sama.
func FiberConfig() fiber.Config {
	return fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
	}
}
