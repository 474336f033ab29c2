// Package usecase defines the application-layer interfaces of the loyalty
// engine. Implementations live in impl.
package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ResolvedIdentity is the outcome of phone-number resolution: the customer
// (registered or synthesized guest) plus a session token for it.
type ResolvedIdentity struct {
	Customer *entity.Customer `json:"customer"`
	Token    string           `json:"token"`
}

// IdentityUsecase defines the interface for phone-number identity use cases
type IdentityUsecase interface {
	// Resolve validates a phone number and resolves it to a registered
	// customer or a guest identity, minting a session token either way.
	Resolve(ctx context.Context, phoneNumber string) (*ResolvedIdentity, error)

	// Refresh re-reads the customer row so cached counters reflect the
	// store.
	Refresh(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)

	// RecomputeCounters recounts the customer's live coupon rows, persists
	// the fresh value into the cached counter and returns the refreshed
	// customer.
	RecomputeCounters(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
}
