package helper

import (
	"testing"

	"leevienna_shop/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func msg(id, senderId uint, read bool) model.ChatMessage {
	m := model.ChatMessage{SenderId: senderId, ReadStatus: read}
	m.ID = id
	return m
}

func TestUnreadMessageIdsSkipsOwnMessages(t *testing.T) {
	messages := []model.ChatMessage{
		msg(1, 10, false), // viewer's own, stays unread
		msg(2, 20, false),
		msg(3, 20, true),
		msg(4, 30, false),
	}

	ids := UnreadMessageIds(messages, 10)
	assert.Equal(t, []uint{2, 4}, ids)
}

func TestUnreadMessageIdsEmptyRoom(t *testing.T) {
	assert.Empty(t, UnreadMessageIds(nil, 10))
	assert.Empty(t, UnreadMessageIds([]model.ChatMessage{msg(1, 10, false)}, 10))
}

func TestCanAccessRoom(t *testing.T) {
	room := model.ChatRoom{CustomerId: 10}
	owner := model.UserProfile{}
	owner.ID = 10
	other := model.UserProfile{Email: "other@example.com"}
	other.ID = 20

	denyGate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged:     func(uint) (bool, error) { return false, nil },
	}
	allowGate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged:     func(uint) (bool, error) { return true, nil },
	}

	assert.True(t, CanAccessRoom(nil, room, owner, denyGate))
	assert.False(t, CanAccessRoom(nil, room, other, denyGate))
	assert.True(t, CanAccessRoom(nil, room, other, allowGate))
}

func newChatTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.UserProfile{}, &model.ChatRoom{}, &model.ChatMessage{}))
	return db
}

func TestCountUnreadFromCountsOnlyThatSender(t *testing.T) {
	db := newChatTestDB(t)

	const customerId, adminId, otherAdminId = 1, 2, 3
	room := model.ChatRoom{CustomerId: customerId}
	require.NoError(t, db.Create(&room).Error)

	rows := []model.ChatMessage{
		{RoomId: room.ID, SenderId: customerId, Message: "hi"},
		{RoomId: room.ID, SenderId: customerId, Message: "anyone there?"},
		{RoomId: room.ID, SenderId: otherAdminId, Message: "on it"},
		{RoomId: room.ID, SenderId: customerId, Message: "thanks", ReadStatus: true},
	}
	require.NoError(t, db.Create(&rows).Error)

	// Unread messages from other admins must not inflate the triage badge.
	count, err := CountUnreadFrom(db, room.ID, customerId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	viewerCount, err := CountUnread(db, room.ID, adminId)
	require.NoError(t, err)
	assert.Equal(t, int64(3), viewerCount)
}
