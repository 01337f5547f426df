package model

import "time"

type Order struct {
	DTO
	OrderNumber    string       `gorm:"unique;size:30" json:"orderNumber"`
	UserId         uint         `gorm:"not null;index" json:"userId"`
	User           *UserProfile `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Total          float64      `json:"total"`
	Status         string       `gorm:"default:pending" json:"status"`
	PickupLocation string       `gorm:"not null" json:"pickupLocation"`
	QuickOrderFlag bool         `gorm:"default:false" json:"quickOrderFlag"`
	PaymentMethod  string       `json:"paymentMethod"`
	Notes          *string      `json:"notes,omitempty"`
	Items          []OrderItem  `gorm:"foreignKey:OrderId" json:"items,omitempty"`
}

// OrderItem freezes the line at submission time. PriceAtOrder is never
// recomputed from the catalog: later price edits must not change historical
// totals.
type OrderItem struct {
	DTO
	OrderId       uint    `gorm:"not null;index" json:"orderId"`
	ProductType   string  `gorm:"not null" json:"productType"`
	ProductId     *string `gorm:"type:uuid" json:"productId"`
	ProductCode   *string `json:"productCode"`
	ProductTitle  string  `gorm:"not null" json:"productTitle"`
	ProductImage  string  `json:"productImage"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	PriceAtOrder  float64 `gorm:"not null" json:"priceAtOrder"`
	Customization *string `json:"customization,omitempty"`
}

type OrderItemInput struct {
	ProductType   string  `validate:"required,oneof=flower keychain customization" json:"productType"`
	ProductId     *string `json:"productId"`
	ProductCode   *string `json:"productCode"`
	ProductTitle  string  `validate:"required" json:"productTitle"`
	ProductImage  string  `json:"productImage"`
	Price         float64 `validate:"gte=0" json:"price"`
	Quantity      int     `validate:"required,gte=1" json:"quantity"`
	Customization *string `json:"customization"`
}

type CreateOrderInput struct {
	Items          []OrderItemInput `validate:"required,min=1,dive" json:"items"`
	PickupLocation string           `validate:"required" json:"pickupLocation"`
	QuickOrder     bool             `json:"quickOrder"`
	Notes          *string          `json:"notes"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required" json:"status"`
}

type FilterOrder struct {
	Pagination
	Status *string `json:"status"`
}

type OrderSummaryRange struct {
	From  time.Time
	To    time.Time
	Count int64
	Total float64
}
