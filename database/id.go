package database

import "github.com/google/uuid"

// NewPublicId generates the opaque catalog key exposed to clients in place
// of the serial primary key.
func NewPublicId() string {
	return uuid.NewString()
}
