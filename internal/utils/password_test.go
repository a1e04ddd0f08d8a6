package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcdef1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Abcdef1", hash)

	assert.True(t, VerifyPassword(hash, "Abcdef1"))
	assert.False(t, VerifyPassword(hash, "abcdef1"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("Abcdef1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("Abcdef1", bcrypt.MinCost)
	require.NoError(t, err)

	// Salted hashing: equal inputs must not produce equal digests.
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "Abcdef1"))
	assert.True(t, VerifyPassword(h2, "Abcdef1"))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	t.Parallel()

	// A non-bcrypt string is a mismatch, never a panic.
	assert.False(t, VerifyPassword("not-a-hash", "Abcdef1"))
}
