package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, GenerateOrderNumber())
	}
}

func TestNormalizeProductId(t *testing.T) {
	valid := "8f14e45f-ceea-467f-a1d6-91b50e4103a5"
	got := NormalizeProductId(&valid)
	require.NotNil(t, got)
	assert.Equal(t, valid, *got)

	// Display-order integers and other junk coerce to absent, not an error.
	junk := "3"
	assert.Nil(t, NormalizeProductId(&junk))

	empty := ""
	assert.Nil(t, NormalizeProductId(&empty))
	assert.Nil(t, NormalizeProductId(nil))
}

func TestParseDisplayPrice(t *testing.T) {
	assert.Equal(t, 299.0, ParseDisplayPrice("₱299"))
	assert.Equal(t, 1299.5, ParseDisplayPrice("₱1,299.50"))
	assert.Equal(t, 0.0, ParseDisplayPrice("contact us"))
	assert.Equal(t, 0.0, ParseDisplayPrice(""))
}
