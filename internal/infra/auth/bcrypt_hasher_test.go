package auth

import (
	"testing"

	"learnhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DefaultCostOutsideRange(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_UnusablePassword(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.UnusablePassword()
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Two calls never produce the same hash.
	other, err := hasher.UnusablePassword()
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	// Obvious guesses never match the placeholder.
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("password", hash))
}
