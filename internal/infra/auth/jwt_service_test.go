package auth

import (
	"testing"
	"time"

	"subul/config"
	"subul/internal/domain/entity"
	"subul/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{Secret: secret, TTL: ttl}

	return cfg
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	require.NotNil(t, svc)

	identity := service.Identity{
		ID:    uuid.New(),
		Email: "merchant@example.com",
		Role:  entity.RoleMerchant,
	}

	token, err := svc.Generate(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	decoded, err := claims.Identity()
	require.NoError(t, err)
	assert.Equal(t, identity, decoded)
}

func TestJWTService_RoundTripAllRoles(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleMerchant, entity.RoleAdmin} {
		identity := service.Identity{ID: uuid.New(), Email: "a@b.c", Role: role}

		token, err := svc.Generate(identity)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)

		decoded, err := claims.Identity()
		require.NoError(t, err)
		assert.Equal(t, identity, decoded)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL issues a token that is already past its expiry instant.
	expired, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", -time.Second))
	require.NoError(t, err)

	token, err := expired.Generate(service.Identity{ID: uuid.New(), Email: "a@b.c", Role: entity.RoleCustomer})
	require.NoError(t, err)

	claims, verifyErr := expired.Verify(token)
	assert.Error(t, verifyErr)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Generate(service.Identity{ID: uuid.New(), Email: "a@b.c", Role: entity.RoleAdmin})
	require.NoError(t, err)

	claims, verifyErr := verifier.Verify(token)
	assert.Error(t, verifyErr)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, verifyErr := svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, verifyErr)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
