package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	// low cost to keep the test fast
	hash, err := HashPassword("super-secret", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "super-secret", hash)

	assert.True(t, Compare("super-secret", hash))
	assert.False(t, Compare("wrong-secret", hash))
	assert.False(t, Compare("super-secret", "not-a-hash"))
	assert.False(t, Compare("", hash))
}

func TestNewAPIKey(t *testing.T) {
	first := NewAPIKey()
	second := NewAPIKey()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
