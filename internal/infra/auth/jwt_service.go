// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"subul/config"
	"subul/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Shared secret for signing and verification.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    ttl,
	}, nil
}

// Generate creates a signed token embedding the identity's id, email and role.
func (s *jwtService) Generate(identity service.Identity) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: identity.Email,
		Role:  identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns the decoded claims.
// Expiry is checked with zero leeway: a token presented at or after its expiry
// instant is rejected. Clock skew between issuer and verifier is not compensated.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
