package handler

import (
	"errors"

	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/helper"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOrCreateRoom resolves the caller's general room so the widget can attach
// before any message exists.
func GetOrCreateRoom(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}

	room, err := helper.GetOrCreateGeneralRoom(database.DB, profile.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to open chat", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// GetRoomMessages hydrates a room and marks the other party's messages read.
// Fetch and mark-read travel together so the unread badge can never show
// messages the viewer has already seen.
func GetRoomMessages(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}

	roomId := c.Locals("roomId").(uint)

	db := database.DB
	var room model.ChatRoom
	if err := db.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Chat room not found", err)
	}
	if !helper.CanAccessRoom(db, room, profile, adminGate) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You don't have access to this conversation", errors.New("not a room participant"))
	}

	messages, err := helper.LoadRoomMessages(db, roomId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load messages", err)
	}

	if err := helper.MarkMessagesRead(db, helper.UnreadMessageIds(messages, profile.ID)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update read status", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}

// SendMessage appends to the room and notifies subscribers over Redis so
// every attached socket re-hydrates.
func SendMessage(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}

	roomId := c.Locals("roomId").(uint)
	input := c.Locals("SendMessageInput").(model.SendMessageInput)

	db := database.DB
	var room model.ChatRoom
	if err := db.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Chat room not found", err)
	}
	if !helper.CanAccessRoom(db, room, profile, adminGate) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You don't have access to this conversation", errors.New("not a room participant"))
	}

	msg, err := helper.AppendMessage(db, roomId, profile.ID, input.Message, input.ImageUrl)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send message", err)
	}

	PublishRoomUpdate(roomId)

	return utils.SuccessResponse(c, fiber.StatusCreated, msg)
}

// GetUnreadCount backs the badge. Both the socket push and the client's
// interval poll hit this; counting unread rows is idempotent so the two
// refresh paths can never disagree.
func GetUnreadCount(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}

	roomId := c.Locals("roomId").(uint)

	db := database.DB
	var room model.ChatRoom
	if err := db.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Chat room not found", err)
	}
	if !helper.CanAccessRoom(db, room, profile, adminGate) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You don't have access to this conversation", errors.New("not a room participant"))
	}

	count, err := helper.CountUnread(db, roomId, profile.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count unread", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"unreadCount": count})
}

// GetChatRooms is the admin triage list: every room with the customer's
// contact details, the linked order if any, and how many customer messages
// still await a reply.
func GetChatRooms(c *fiber.Ctx) error {
	db := database.DB
	var rooms []model.ChatRoom
	if err := db.Preload("Customer").Preload("Order").
		Order("last_message_at desc").
		Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load chat rooms", err)
	}

	overview := []model.ChatRoomOverview{}
	for _, room := range rooms {
		row := model.ChatRoomOverview{Room: room}
		if room.Customer != nil {
			row.CustomerEmail = room.Customer.Email
			if room.Customer.FullName != nil {
				row.CustomerName = *room.Customer.FullName
			}
		}
		if room.Order != nil {
			row.OrderNumber = &room.Order.OrderNumber
		}
		count, err := helper.CountUnreadFrom(db, room.ID, room.CustomerId)
		if err == nil {
			row.UnreadCount = count
		}
		overview = append(overview, row)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, overview)
}
