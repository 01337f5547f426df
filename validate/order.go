package validate

import (
	"errors"
	"fmt"

	"leevienna_shop/constants"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func IsValidPickupLocation(location string) bool {
	for _, l := range constants.PickupLocations {
		if l == location {
			return true
		}
	}
	return false
}

func IsValidOrderStatus(status string) bool {
	for _, s := range constants.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if !IsValidPickupLocation(input.PickupLocation) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Pickup location must be one of %v", constants.PickupLocations),
				errors.New("invalid pickup location"))
		}
		c.Locals("CreateOrderInput", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if !IsValidOrderStatus(input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Status must be one of %v", constants.OrderStatuses),
				errors.New("invalid status"))
		}
		c.Locals("UpdateOrderStatusInput", input)
		return GetById(key)(c)
	}
}
