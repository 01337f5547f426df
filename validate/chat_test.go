package validate

import (
	"testing"

	"leevienna_shop/model"

	"github.com/stretchr/testify/assert"
)

func TestMessageHasContent(t *testing.T) {
	url := "https://res.cloudinary.com/demo/image/upload/x.png"
	blank := "   "

	assert.True(t, MessageHasContent(model.SendMessageInput{Message: "hello"}))
	assert.True(t, MessageHasContent(model.SendMessageInput{Message: "  ", ImageUrl: &url}))
	assert.True(t, MessageHasContent(model.SendMessageInput{ImageUrl: &url}))

	assert.False(t, MessageHasContent(model.SendMessageInput{Message: "   "}))
	assert.False(t, MessageHasContent(model.SendMessageInput{}))
	assert.False(t, MessageHasContent(model.SendMessageInput{ImageUrl: &blank}))
}
