package helper

import (
	"time"

	"leevienna_shop/constants"
	"leevienna_shop/model"

	"gorm.io/gorm"
)

// GetOrCreateGeneralRoom resolves the customer's single general room,
// creating it lazily on first need.
func GetOrCreateGeneralRoom(tx *gorm.DB, customerId uint) (model.ChatRoom, error) {
	room := model.ChatRoom{
		CustomerId: customerId,
		RoomType:   constants.ROOM_GENERAL,
	}
	err := tx.Where(model.ChatRoom{CustomerId: customerId, RoomType: constants.ROOM_GENERAL}).
		Attrs(model.ChatRoom{LastMessageAt: time.Now()}).
		FirstOrCreate(&room).Error
	return room, err
}

// LoadRoomMessages hydrates a room: every message in creation order, sender
// display metadata resolved in one batched profile lookup over the distinct
// sender ids present.
func LoadRoomMessages(db *gorm.DB, roomId uint) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := db.Where("room_id = ?", roomId).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return messages, nil
	}

	seen := make(map[uint]bool)
	senderIds := []uint{}
	for _, msg := range messages {
		if !seen[msg.SenderId] {
			seen[msg.SenderId] = true
			senderIds = append(senderIds, msg.SenderId)
		}
	}

	var profiles []model.UserProfile
	if err := db.Where("id IN ?", senderIds).Find(&profiles).Error; err != nil {
		return nil, err
	}
	byId := make(map[uint]model.UserProfile, len(profiles))
	for _, p := range profiles {
		byId[p.ID] = p
	}

	for i := range messages {
		if p, ok := byId[messages[i].SenderId]; ok {
			messages[i].Sender = &model.ChatSender{Id: p.ID, FullName: p.FullName, IsAdmin: p.IsAdmin}
		}
	}
	return messages, nil
}

// UnreadMessageIds selects the rows a viewer's fetch should flip to read:
// unread and authored by someone else. The viewer's own messages are never
// marked by their own fetch.
func UnreadMessageIds(messages []model.ChatMessage, viewerId uint) []uint {
	ids := []uint{}
	for _, msg := range messages {
		if !msg.ReadStatus && msg.SenderId != viewerId {
			ids = append(ids, msg.ID)
		}
	}
	return ids
}

// MarkMessagesRead flips the given rows in one batched update.
func MarkMessagesRead(db *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Model(&model.ChatMessage{}).Where("id IN ?", ids).
		Update("read_status", true).Error
}

// CountUnread is the idempotent refresh behind the unread badge; both the
// push feed and the client's interval poll funnel into it.
func CountUnread(db *gorm.DB, roomId, viewerId uint) (int64, error) {
	var count int64
	err := db.Model(&model.ChatMessage{}).
		Where("room_id = ? AND read_status = ? AND sender_id <> ?", roomId, false, viewerId).
		Count(&count).Error
	return count, err
}

// CountUnreadFrom counts a single sender's unread messages; the admin triage
// list uses it with the room's customer so replies from other admins never
// inflate the badge.
func CountUnreadFrom(db *gorm.DB, roomId, senderId uint) (int64, error) {
	var count int64
	err := db.Model(&model.ChatMessage{}).
		Where("room_id = ? AND read_status = ? AND sender_id = ?", roomId, false, senderId).
		Count(&count).Error
	return count, err
}

// AppendMessage inserts a message and bumps the room's last_message_at.
func AppendMessage(tx *gorm.DB, roomId, senderId uint, text string, imageUrl *string) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		RoomId:   roomId,
		SenderId: senderId,
		Message:  text,
		ImageUrl: imageUrl,
	}
	if err := tx.Create(&msg).Error; err != nil {
		return msg, err
	}
	err := tx.Model(&model.ChatRoom{}).Where("id = ?", roomId).
		Update("last_message_at", time.Now()).Error
	return msg, err
}

// CanAccessRoom allows the room's customer and any admin.
func CanAccessRoom(db *gorm.DB, room model.ChatRoom, profile model.UserProfile, gate *AdminGate) bool {
	if room.CustomerId == profile.ID {
		return true
	}
	return gate.ResolveIsAdmin(profile.ID, profile.Email)
}
