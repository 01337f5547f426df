package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/helper"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder runs the whole checkout in one transaction: order header,
// frozen line items, and the announcement message in the customer's general
// room. Order rooms from the earlier design are not created anymore; the
// general room carries all order updates.
func CreateOrder(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in to place an order", errors.New("no profile"))
	}

	input := c.Locals("CreateOrderInput").(model.CreateOrderInput)

	total := 0.0
	for _, item := range input.Items {
		total += item.Price * float64(item.Quantity)
	}

	db := database.DB
	tx := db.Begin()

	order := model.Order{
		OrderNumber:    helper.GenerateOrderNumber(),
		UserId:         profile.ID,
		Total:          total,
		Status:         constants.ORDER_PENDING,
		PickupLocation: input.PickupLocation,
		QuickOrderFlag: input.QuickOrder,
		PaymentMethod:  constants.PAYMENT_CASH_ON_PICKUP,
		Notes:          input.Notes,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create order", err)
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	lines := make([]utils.OrderConfirmationLine, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, model.OrderItem{
			OrderId:       order.ID,
			ProductType:   item.ProductType,
			ProductId:     helper.NormalizeProductId(item.ProductId),
			ProductCode:   item.ProductCode,
			ProductTitle:  item.ProductTitle,
			ProductImage:  item.ProductImage,
			Quantity:      item.Quantity,
			PriceAtOrder:  item.Price,
			Customization: item.Customization,
		})
		lines = append(lines, utils.OrderConfirmationLine{
			Title:    item.ProductTitle,
			Quantity: item.Quantity,
			Subtotal: item.Price * float64(item.Quantity),
		})
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create order items", err)
	}

	room, err := helper.GetOrCreateGeneralRoom(tx, profile.ID)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to open chat", err)
	}

	announcement := fmt.Sprintf("New order %s placed! Pickup at %s. We'll update you here.", order.OrderNumber, order.PickupLocation)
	if _, err := helper.AppendMessage(tx, room.ID, profile.ID, announcement, nil); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to open chat", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create order", err)
	}

	PublishRoomUpdate(room.ID)

	// Quick orders bypass the cart, so only a full-cart checkout clears it.
	if !input.QuickOrder {
		if err := cartStore.Clear(c.Context(), profile.ID); err != nil {
			log.Printf("failed to clear cart for user %d: %v", profile.ID, err)
		}
	}

	name := profile.Email
	if profile.FullName != nil {
		name = *profile.FullName
	}
	qrPng, err := utils.GenerateQRCode(order.OrderNumber, 256)
	if err != nil {
		log.Printf("failed to generate QR for order %s: %v", order.OrderNumber, err)
		qrPng = nil
	}
	utils.SendOrderConfirmationEmail(profile.Email, utils.OrderConfirmationData{
		OrderNumber:    order.OrderNumber,
		CustomerName:   name,
		PickupLocation: order.PickupLocation,
		Items:          lines,
		Total:          total,
		PaymentMethod:  order.PaymentMethod,
	}, qrPng)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"orderNumber": order.OrderNumber,
		"orderId":     order.ID,
		"roomId":      room.ID,
		"total":       total,
		"message":     fmt.Sprintf("Order %s created! Chat opened for updates.", order.OrderNumber),
	})
}

// GetMyOrders returns the signed-in customer's orders, newest first, each
// with a pickup QR for the counter.
func GetMyOrders(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}

	var orders []model.Order
	if err := database.DB.
		Preload("Items").
		Where("user_id = ?", profile.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load orders", err)
	}

	response := []fiber.Map{}
	for _, order := range orders {
		qrBase64 := ""
		qrBytes, err := utils.GenerateQRCode(order.OrderNumber, 400)
		if err != nil {
			log.Printf("failed to generate QR for order %s: %v", order.OrderNumber, err)
		} else {
			qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
		}

		response = append(response, fiber.Map{
			"orderNumber":    order.OrderNumber,
			"status":         order.Status,
			"total":          order.Total,
			"pickupLocation": order.PickupLocation,
			"createdAt":      order.CreatedAt,
			"items":          order.Items,
			"qrCode":         qrBase64,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetOrders is the admin list, filterable by status.
func GetOrders(c *fiber.Ctx) error {
	var filter model.FilterOrder
	filter.Status = utils.StringPtr(c.Query("status"))
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = utils.Ptr(page)
	}

	db := database.DB
	query := db.Model(&model.Order{}).Preload("User").Preload("Items").Order("created_at desc")
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetOrderDetail(c *fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("User").
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus is the only way an order changes state; orders are never
// deleted.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := c.Locals("orderId").(uint)
	input := c.Locals("UpdateOrderStatusInput").(model.UpdateOrderStatusInput)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	if err := database.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update order status", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderNumber": order.OrderNumber,
		"status":      input.Status,
	})
}
