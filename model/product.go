package model

// Catalog prices are display strings ("₱299") exactly as the storefront
// renders them; helper.ParseDisplayPrice extracts the numeric value when a
// line is added to a cart or order.

type FlowerProduct struct {
	DTO
	PublicId     string `gorm:"type:uuid;uniqueIndex" json:"publicId"`
	Title        string `gorm:"not null" json:"title"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `gorm:"not null" json:"price"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

type KeychainProduct struct {
	DTO
	PublicId     string `gorm:"type:uuid;uniqueIndex" json:"publicId"`
	Code         string `gorm:"unique;not null" json:"code"`
	Title        string `gorm:"not null" json:"title"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `gorm:"not null" json:"price"`
	Description  string `json:"description"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

// FlowerCustomization is a named customization set (ribbon colors, wrapping
// themes) sold alongside the base products.
type FlowerCustomization struct {
	DTO
	PublicId     string `gorm:"type:uuid;uniqueIndex" json:"publicId"`
	Title        string `gorm:"not null" json:"title"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `gorm:"not null" json:"price"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

type CreateFlowerInput struct {
	Title        string `validate:"required" json:"title"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `validate:"required" json:"price"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

type CreateKeychainInput struct {
	Code         string `validate:"required" json:"code"`
	Title        string `validate:"required" json:"title"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `validate:"required" json:"price"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

type CreateCustomizationInput struct {
	Title        string `validate:"required" json:"title"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `validate:"required" json:"price"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

type EditProductInput struct {
	Title        *string `json:"title"`
	ImageUrl     *string `json:"imageUrl"`
	Price        *string `json:"price"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}
