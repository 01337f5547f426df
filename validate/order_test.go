package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPickupLocation(t *testing.T) {
	assert.True(t, IsValidPickupLocation("Catacte"))
	assert.True(t, IsValidPickupLocation("Plaridel"))
	assert.True(t, IsValidPickupLocation("Baliuag"))

	assert.False(t, IsValidPickupLocation("catacte"))
	assert.False(t, IsValidPickupLocation("Manila"))
	assert.False(t, IsValidPickupLocation(""))
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "processing", "ready", "completed", "cancelled"} {
		assert.True(t, IsValidOrderStatus(status), status)
	}

	assert.False(t, IsValidOrderStatus("shipped"))
	assert.False(t, IsValidOrderStatus("Pending"))
	assert.False(t, IsValidOrderStatus(""))
}
