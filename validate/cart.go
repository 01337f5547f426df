package validate

import (
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func AddCartItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddCartItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		c.Locals("AddCartItemInput", input)
		return c.Next()
	}
}

func UpdateCartQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateCartQuantityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		c.Locals("UpdateCartQuantityInput", input)
		return c.Next()
	}
}
