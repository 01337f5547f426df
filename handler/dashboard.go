package handler

import (
	"time"

	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the back-office landing counters in one round trip.
func GetDashboard(c *fiber.Ctx) error {
	db := database.DB

	var pendingOrders, totalOrders, totalCustomers, openRooms int64
	db.Model(&model.Order{}).Where("status = ?", constants.ORDER_PENDING).Count(&pendingOrders)
	db.Model(&model.Order{}).Count(&totalOrders)
	db.Model(&model.UserProfile{}).Where("is_admin = ?", false).Count(&totalCustomers)
	db.Model(&model.ChatRoom{}).Count(&openRooms)

	var unreadMessages int64
	db.Model(&model.ChatMessage{}).
		Joins("JOIN user_profiles ON user_profiles.id = chat_messages.sender_id").
		Where("chat_messages.read_status = ? AND user_profiles.is_admin = ?", false, false).
		Count(&unreadMessages)

	var flowers, keychains, customizations int64
	db.Model(&model.FlowerProduct{}).Count(&flowers)
	db.Model(&model.KeychainProduct{}).Count(&keychains)
	db.Model(&model.FlowerCustomization{}).Count(&customizations)

	ordersByStatus := map[string]int64{}
	for _, status := range constants.OrderStatuses {
		var n int64
		db.Model(&model.Order{}).Where("status = ?", status).Count(&n)
		ordersByStatus[status] = n
	}

	var recentOrders []model.Order
	db.Preload("Items").Order("created_at desc").Limit(5).Find(&recentOrders)

	today := time.Now().Truncate(24 * time.Hour)
	var todayOrders int64
	var todayRevenue float64
	db.Model(&model.Order{}).Where("created_at >= ?", today).Count(&todayOrders)
	db.Model(&model.Order{}).
		Where("created_at >= ? AND status <> ?", today, constants.ORDER_CANCELLED).
		Select("COALESCE(SUM(total), 0)").Scan(&todayRevenue)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pendingOrders":  pendingOrders,
		"totalOrders":    totalOrders,
		"ordersByStatus": ordersByStatus,
		"totalCustomers": totalCustomers,
		"totalProducts":  flowers + keychains + customizations,
		"chatRooms":      openRooms,
		"unreadMessages": unreadMessages,
		"todayOrders":    todayOrders,
		"todayRevenue":   todayRevenue,
		"recentOrders":   recentOrders,
	})
}
