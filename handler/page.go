package handler

import (
	"leevienna_shop/constants"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPickupLocations feeds the checkout dropdown.
func GetPickupLocations(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"locations":     constants.PickupLocations,
		"paymentMethod": constants.PAYMENT_CASH_ON_PICKUP,
	})
}

// GetPrivacyPolicy and GetDataDeletion are the static compliance pages the
// OAuth providers require.
func GetPrivacyPolicy(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"title": "Privacy Policy",
		"sections": []fiber.Map{
			{"heading": "What we collect", "body": "Your email, name and phone number, used only to fulfil your orders and reply in chat."},
			{"heading": "What we never do", "body": "We never sell or share your data with third parties."},
			{"heading": "Contact", "body": "Email " + constants.DEFAULT_BOOTSTRAP_ADMIN_EMAIL + " for any privacy concern."},
		},
	})
}

func GetDataDeletion(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"title": "Data Deletion",
		"body":  "To delete your account and all associated data, email " + constants.DEFAULT_BOOTSTRAP_ADMIN_EMAIL + " from the address you registered with. Deletion completes within 7 days.",
	})
}
