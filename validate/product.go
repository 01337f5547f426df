package validate

import (
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateFlower() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFlowerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		c.Locals("CreateFlowerInput", input)
		return c.Next()
	}
}

func CreateKeychain() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateKeychainInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		c.Locals("CreateKeychainInput", input)
		return c.Next()
	}
}

func CreateCustomization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomizationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		c.Locals("CreateCustomizationInput", input)
		return c.Next()
	}
}

func EditProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		c.Locals("EditProductInput", input)
		return GetById(key)(c)
	}
}
