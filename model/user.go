package model

// UserProfile is the identity row. Created on first registration; IsAdmin is
// the authorization source of truth (read through the admin gate, not
// directly — see helper.AdminGate).
type UserProfile struct {
	DTO
	Email        string  `gorm:"unique;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FullName     *string `json:"fullName"`
	Phone        *string `json:"phone"`
	IsAdmin      bool    `gorm:"default:false" json:"isAdmin"`
}

type RegisterInput struct {
	Email    string  `validate:"required,email" json:"email"`
	Password string  `validate:"required,min=6" json:"password"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type EditProfileInput struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}
