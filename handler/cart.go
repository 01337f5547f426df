package handler

import (
	"errors"

	"leevienna_shop/constants"
	"leevienna_shop/helper"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

var cartStore = helper.NewCartStore(helper.NewRedisCartStorage(redisClient))

func requireProfile(c *fiber.Ctx) (model.UserProfile, error) {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return profile, errors.New("no profile")
	}
	return profile, nil
}

func GetCart(c *fiber.Ctx) error {
	profile, err := requireProfile(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
	}

	items := cartStore.Load(c.Context(), profile.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": helper.CartTotal(items),
		"count": helper.CartCount(items),
	})
}

func AddCartItem(c *fiber.Ctx) error {
	profile, err := requireProfile(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
	}

	input := c.Locals("AddCartItemInput").(model.AddCartItemInput)
	items, err := cartStore.AddItem(c.Context(), profile.ID, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": helper.CartTotal(items),
		"count": helper.CartCount(items),
	})
}

func UpdateCartQuantity(c *fiber.Ctx) error {
	profile, err := requireProfile(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
	}

	input := c.Locals("UpdateCartQuantityInput").(model.UpdateCartQuantityInput)
	items, err := cartStore.SetQuantity(c.Context(), profile.ID, c.Params("itemId"), input.Quantity)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": helper.CartTotal(items),
		"count": helper.CartCount(items),
	})
}

func RemoveCartItem(c *fiber.Ctx) error {
	profile, err := requireProfile(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
	}

	items, err := cartStore.RemoveItem(c.Context(), profile.ID, c.Params("itemId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": helper.CartTotal(items),
		"count": helper.CartCount(items),
	})
}

func ClearCart(c *fiber.Ctx) error {
	profile, err := requireProfile(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
	}

	if err := cartStore.Clear(c.Context(), profile.ID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to clear cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"items": []model.CartItem{}, "total": 0, "count": 0})
}
