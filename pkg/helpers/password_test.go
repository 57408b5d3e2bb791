package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h1, "$2"), "expected bcrypt digest, got %q", h1)
	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ (random salt)")
	assert.NotEqual(t, "secret123", h1)
}

func TestCompareHashAndPassword(t *testing.T) {
	h, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CompareHashAndPassword(h, "correct horse battery staple"))
	assert.False(t, CompareHashAndPassword(h, "wrong password"))
	assert.False(t, CompareHashAndPassword(h, ""))
}

func TestCompareHashAndPassword_MalformedHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-digest", "anything"))
	assert.False(t, CompareHashAndPassword("", "anything"))
}
