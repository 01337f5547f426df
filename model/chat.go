package model

import "time"

// ChatRoom is one conversation. A customer has at most one general room
// (enforced with a partial unique index at migrate time); order rooms carry
// the order they were opened for and exist only in historical data.
type ChatRoom struct {
	DTO
	CustomerId    uint         `gorm:"not null;index" json:"customerId"`
	Customer      *UserProfile `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	OrderId       *uint        `gorm:"index" json:"orderId,omitempty"`
	Order         *Order       `gorm:"foreignKey:OrderId" json:"order,omitempty"`
	RoomType      string       `gorm:"not null;default:general" json:"roomType"`
	LastMessageAt time.Time    `json:"lastMessageAt"`
}

// ChatMessage is append-only; ReadStatus is the only field ever updated,
// flipped false→true when the non-sending party views the room.
type ChatMessage struct {
	DTO
	RoomId     uint    `gorm:"not null;index" json:"roomId"`
	SenderId   uint    `gorm:"not null;index" json:"senderId"`
	Message    string  `json:"message"`
	ImageUrl   *string `json:"imageUrl,omitempty"`
	ReadStatus bool    `gorm:"default:false" json:"readStatus"`

	Sender *ChatSender `gorm:"-" json:"sender,omitempty"`
}

// ChatSender is the display metadata resolved in the batched profile lookup
// after hydrate.
type ChatSender struct {
	Id       uint    `json:"id"`
	FullName *string `json:"fullName"`
	IsAdmin  bool    `json:"isAdmin"`
}

type SendMessageInput struct {
	Message  string  `json:"message"`
	ImageUrl *string `json:"imageUrl"`
}

// ChatRoomOverview is one row of the admin triage list.
type ChatRoomOverview struct {
	Room          ChatRoom `json:"room"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	OrderNumber   *string  `json:"orderNumber,omitempty"`
	UnreadCount   int64    `json:"unreadCount"`
}
