// Package service defines the interfaces for domain services that require an
// infrastructure implementation (tokens, hashing, analytics).
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// Identity is the verified payload of a bearer token.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  entity.Role
}

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Identity decodes the claims back into a verified Identity.
func (c *Claims) Identity() (Identity, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, err
	}

	return Identity{ID: id, Email: c.Email, Role: entity.Role(c.Role)}, nil
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Verification is stateless: there is no revocation list, so an issued token
// stays valid until its expiry regardless of later account changes. Callers
// needing immediate revocation must check current account state themselves.
type TokenService interface {
	// Generate produces a signed token embedding the identity.
	Generate(identity Identity) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	Verify(tokenString string) (*Claims, error)
}
