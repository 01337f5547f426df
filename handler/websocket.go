package handler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"leevienna_shop/config"
	"leevienna_shop/database"
	"leevienna_shop/helper"
	"leevienna_shop/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379")})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func chatChannel(roomId uint) string {
	return fmt.Sprintf("chat:room:%d", roomId)
}

// PublishRoomUpdate wakes every subscriber of a room after an insert.
func PublishRoomUpdate(roomId uint) {
	if err := redisClient.Publish(context.Background(), chatChannel(roomId), "new-message").Err(); err != nil {
		log.Printf("failed to publish room update for room %d: %v", roomId, err)
	}
}

// authorizeSocketViewer resolves the viewer's profile and applies the same
// room-access rule the HTTP endpoints use. Guests and non-participants get
// nothing: a socket must never leak another customer's conversation.
func authorizeSocketViewer(roomId, viewerId uint) bool {
	if viewerId == 0 {
		return false
	}

	db := database.DB
	var room model.ChatRoom
	if err := db.First(&room, roomId).Error; err != nil {
		return false
	}
	var profile model.UserProfile
	if err := db.First(&profile, viewerId).Error; err != nil {
		return false
	}
	return helper.CanAccessRoom(db, room, profile, adminGate)
}

// ChatWebSocket handles one client's live view of a room. On every Redis
// notification the room is re-hydrated and the full message list pushed to
// all attached clients — re-fetch over incremental patch keeps ordering and
// read-state handling in one place.
func ChatWebSocket(c *websocket.Conn) {
	roomIdStr := c.Params("roomId")
	id64, _ := strconv.ParseUint(roomIdStr, 10, 64)
	roomId := uint(id64)

	viewerId, _ := c.Locals("userId").(uint)

	if !authorizeSocketViewer(roomId, viewerId) {
		c.WriteJSON(map[string]string{"error": "You don't have access to this conversation"})
		c.Close()
		return
	}

	// Unregister on disconnect so channels don't leak across navigation.
	defer func() {
		mu.Lock()
		if clients[roomId] != nil {
			delete(clients[roomId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[roomId] == nil {
		clients[roomId] = make(map[*websocket.Conn]bool)
	}
	clients[roomId][c] = true
	mu.Unlock()

	// Initial hydrate.
	if messages, err := hydrateRoom(roomId, viewerId); err == nil {
		c.WriteJSON(messages)
	}

	pubsub := redisClient.Subscribe(context.Background(), chatChannel(roomId))
	defer pubsub.Close()

	// Nothing else reads the client socket, so a reader goroutine is the only
	// way to notice a disconnect. Closing the subscription ends the pump loop
	// below and lets the defers run.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				pubsub.Close()
				return
			}
		}
	}()

	pumpRoomUpdates(roomId, viewerId, pubsub.Channel())
}

// pumpRoomUpdates re-hydrates and fans out on every notification; returns
// when the subscription channel closes.
func pumpRoomUpdates(roomId, viewerId uint, updates <-chan *redis.Message) {
	for range updates {
		messages, err := hydrateRoom(roomId, viewerId)
		if err != nil {
			log.Printf("failed to hydrate room %d: %v", roomId, err)
			continue
		}

		mu.Lock()
		for conn := range clients[roomId] {
			if err := conn.WriteJSON(messages); err != nil {
				conn.Close()
				delete(clients[roomId], conn)
			}
		}
		mu.Unlock()
	}
}

// hydrateRoom re-fetches the room and flips unread rows for the viewer, the
// same re-fetch + re-mark-read the HTTP hydrate performs.
func hydrateRoom(roomId, viewerId uint) ([]model.ChatMessage, error) {
	db := database.DB
	messages, err := helper.LoadRoomMessages(db, roomId)
	if err != nil {
		return nil, err
	}

	if viewerId != 0 {
		if err := helper.MarkMessagesRead(db, helper.UnreadMessageIds(messages, viewerId)); err != nil {
			log.Printf("failed to mark messages read in room %d: %v", roomId, err)
		}
	}

	return messages, nil
}
