package validate

import (
	"errors"
	"strings"

	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

// MessageHasContent rejects whitespace-only messages unless an image is
// attached; checked before any write happens.
func MessageHasContent(input model.SendMessageInput) bool {
	if strings.TrimSpace(input.Message) != "" {
		return true
	}
	return input.ImageUrl != nil && strings.TrimSpace(*input.ImageUrl) != ""
}

func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SendMessageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if !MessageHasContent(input) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Message cannot be empty", errors.New("empty message"))
		}
		input.Message = strings.TrimSpace(input.Message)
		c.Locals("SendMessageInput", input)
		return c.Next()
	}
}
