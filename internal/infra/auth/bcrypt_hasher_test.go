package auth

import (
	"testing"

	"subul/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // minimal cost keeps the test fast
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_DefaultCostWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.True(t, hasher.Check("secret", hash))
}
