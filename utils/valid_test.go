package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "&lt;script&gt;", SanitizeInput("<script>"))
	assert.Equal(t, "ab", SanitizeInput("a\x00b"))
}

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Affiliate@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "affiliate@example.com", email)

	_, err = SanitizeEmail("not-an-email")
	assert.Error(t, err)

	_, err = SanitizeEmail("")
	assert.Error(t, err)
}

func TestSanitizePhone(t *testing.T) {
	phone, err := SanitizePhone("+234 803 555 0100")
	require.NoError(t, err)
	assert.Equal(t, "+2348035550100", phone)

	phone, err = SanitizePhone("2348035550100")
	require.NoError(t, err)
	assert.Equal(t, "+2348035550100", phone)

	// Optional field
	phone, err = SanitizePhone("   ")
	require.NoError(t, err)
	assert.Equal(t, "", phone)

	_, err = SanitizePhone("+12")
	assert.Error(t, err)
}
