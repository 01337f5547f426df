package handler

import (
	"testing"
	"time"

	"leevienna_shop/constants"
	"leevienna_shop/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpRoomUpdatesStopsWhenSubscriptionCloses(t *testing.T) {
	updates := make(chan *redis.Message)
	done := make(chan struct{})

	go func() {
		pumpRoomUpdates(42, 0, updates)
		close(done)
	}()

	close(updates)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump kept running after the subscription channel closed")
	}
}

func TestSocketViewerGuestRejected(t *testing.T) {
	// Guests are rejected before any lookup happens.
	assert.False(t, authorizeSocketViewer(1, 0))
}

func TestSocketViewerAccessMatchesRoomOwnership(t *testing.T) {
	db := setupOrderTestDB(t)

	owner := model.UserProfile{Email: "dana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	intruder := model.UserProfile{Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&intruder).Error)
	admin := model.UserProfile{Email: "staff@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)

	room := model.ChatRoom{CustomerId: owner.ID, RoomType: constants.ROOM_GENERAL}
	require.NoError(t, db.Create(&room).Error)

	assert.True(t, authorizeSocketViewer(room.ID, owner.ID))
	assert.False(t, authorizeSocketViewer(room.ID, intruder.ID))
	assert.True(t, authorizeSocketViewer(room.ID, admin.ID))
	assert.False(t, authorizeSocketViewer(9999, owner.ID))
}
