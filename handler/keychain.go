package handler

import (
	"leevienna_shop/database"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetKeychains(c *fiber.Ctx) error {
	var keychains []model.KeychainProduct
	if err := database.DB.
		Where("is_active = ?", true).
		Order("display_order asc, id asc").
		Find(&keychains).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load keychains", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, keychains)
}

func GetAllKeychains(c *fiber.Ctx) error {
	var keychains []model.KeychainProduct
	if err := database.DB.
		Order("display_order asc, id asc").
		Find(&keychains).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load keychains", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, keychains)
}

func CreateKeychain(c *fiber.Ctx) error {
	input := c.Locals("CreateKeychainInput").(model.CreateKeychainInput)

	var keychain model.KeychainProduct
	copier.Copy(&keychain, &input)
	keychain.PublicId = database.NewPublicId()
	if input.IsActive != nil {
		keychain.IsActive = *input.IsActive
	} else {
		keychain.IsActive = true
	}

	if err := database.DB.Create(&keychain).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create keychain", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, keychain)
}

func EditKeychain(c *fiber.Ctx) error {
	keychainId := c.Locals("keychainId").(uint)
	input := c.Locals("EditProductInput").(model.EditProductInput)

	var keychain model.KeychainProduct
	if err := database.DB.First(&keychain, keychainId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Keychain not found", err)
	}

	updates := collectProductEdit(input, true)
	if len(updates) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, keychain)
	}
	if err := database.DB.Model(&keychain).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update keychain", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, keychain)
}

func ToggleKeychain(c *fiber.Ctx) error {
	keychainId := c.Locals("keychainId").(uint)

	var keychain model.KeychainProduct
	if err := database.DB.First(&keychain, keychainId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Keychain not found", err)
	}
	if err := database.DB.Model(&keychain).Update("is_active", !keychain.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update keychain", err)
	}
	keychain.IsActive = !keychain.IsActive
	return utils.SuccessResponse(c, fiber.StatusOK, keychain)
}

func DeleteKeychains(c *fiber.Ctx) error {
	ids := c.Locals("ids").([]uint)

	if err := database.DB.Delete(&model.KeychainProduct{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete keychains", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": ids})
}
