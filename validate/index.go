package validate

import (
	"errors"
	"strconv"

	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById parses a numeric route param and stashes it in Locals under the
// param name.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := c.Params(key)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil || id == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", errors.New("id must be a positive integer"))
		}
		c.Locals(key, uint(id))
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if len(input.IDs) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No ids provided", errors.New("ids required"))
		}
		c.Locals("ids", input.IDs)
		return c.Next()
	}
}
