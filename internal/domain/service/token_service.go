// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"github.com/google/uuid"
)

// SessionClaims is the validated content of a session token. Guests carry a
// nil CustomerID; the phone number is always present.
type SessionClaims struct {
	CustomerID  *uuid.UUID
	PhoneNumber string
	Guest       bool
}

// TokenService defines the interface for minting and validating session
// tokens handed out at phone resolution.
type TokenService interface {
	// GenerateToken creates a session token for a resolved identity.
	GenerateToken(customerID *uuid.UUID, phoneNumber string, guest bool) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
