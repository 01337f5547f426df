package handler

import (
	"leevienna_shop/database"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetCustomizations(c *fiber.Ctx) error {
	var customizations []model.FlowerCustomization
	if err := database.DB.
		Where("is_active = ?", true).
		Order("display_order asc, id asc").
		Find(&customizations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load customizations", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customizations)
}

func GetAllCustomizations(c *fiber.Ctx) error {
	var customizations []model.FlowerCustomization
	if err := database.DB.
		Order("display_order asc, id asc").
		Find(&customizations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load customizations", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customizations)
}

func CreateCustomization(c *fiber.Ctx) error {
	input := c.Locals("CreateCustomizationInput").(model.CreateCustomizationInput)

	var customization model.FlowerCustomization
	copier.Copy(&customization, &input)
	customization.PublicId = database.NewPublicId()
	if input.IsActive != nil {
		customization.IsActive = *input.IsActive
	} else {
		customization.IsActive = true
	}

	if err := database.DB.Create(&customization).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create customization", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, customization)
}

func EditCustomization(c *fiber.Ctx) error {
	customizationId := c.Locals("customizationId").(uint)
	input := c.Locals("EditProductInput").(model.EditProductInput)

	var customization model.FlowerCustomization
	if err := database.DB.First(&customization, customizationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Customization not found", err)
	}

	updates := collectProductEdit(input, false)
	if len(updates) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, customization)
	}
	if err := database.DB.Model(&customization).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update customization", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customization)
}

func ToggleCustomization(c *fiber.Ctx) error {
	customizationId := c.Locals("customizationId").(uint)

	var customization model.FlowerCustomization
	if err := database.DB.First(&customization, customizationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Customization not found", err)
	}
	if err := database.DB.Model(&customization).Update("is_active", !customization.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update customization", err)
	}
	customization.IsActive = !customization.IsActive
	return utils.SuccessResponse(c, fiber.StatusOK, customization)
}

func DeleteCustomizations(c *fiber.Ctx) error {
	ids := c.Locals("ids").([]uint)

	if err := database.DB.Delete(&model.FlowerCustomization{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete customizations", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": ids})
}
