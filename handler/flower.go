package handler

import (
	"leevienna_shop/database"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetFlowers is the public storefront listing: active items only, in display
// order.
func GetFlowers(c *fiber.Ctx) error {
	var flowers []model.FlowerProduct
	if err := database.DB.
		Where("is_active = ?", true).
		Order("display_order asc, id asc").
		Find(&flowers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load flowers", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, flowers)
}

// GetAllFlowers is the admin listing and includes hidden items.
func GetAllFlowers(c *fiber.Ctx) error {
	var flowers []model.FlowerProduct
	if err := database.DB.
		Order("display_order asc, id asc").
		Find(&flowers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load flowers", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, flowers)
}

func CreateFlower(c *fiber.Ctx) error {
	input := c.Locals("CreateFlowerInput").(model.CreateFlowerInput)

	var flower model.FlowerProduct
	copier.Copy(&flower, &input)
	flower.PublicId = database.NewPublicId()
	if input.IsActive != nil {
		flower.IsActive = *input.IsActive
	} else {
		flower.IsActive = true
	}

	if err := database.DB.Create(&flower).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create flower", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, flower)
}

func EditFlower(c *fiber.Ctx) error {
	flowerId := c.Locals("flowerId").(uint)
	input := c.Locals("EditProductInput").(model.EditProductInput)

	var flower model.FlowerProduct
	if err := database.DB.First(&flower, flowerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Flower not found", err)
	}

	updates := collectProductEdit(input, false)
	if len(updates) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, flower)
	}
	if err := database.DB.Model(&flower).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update flower", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, flower)
}

// ToggleFlower flips visibility without touching the rest of the row.
func ToggleFlower(c *fiber.Ctx) error {
	flowerId := c.Locals("flowerId").(uint)

	var flower model.FlowerProduct
	if err := database.DB.First(&flower, flowerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Flower not found", err)
	}
	if err := database.DB.Model(&flower).Update("is_active", !flower.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update flower", err)
	}
	flower.IsActive = !flower.IsActive
	return utils.SuccessResponse(c, fiber.StatusOK, flower)
}

func DeleteFlowers(c *fiber.Ctx) error {
	ids := c.Locals("ids").([]uint)

	if err := database.DB.Delete(&model.FlowerProduct{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete flowers", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": ids})
}
