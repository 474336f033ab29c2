package repository

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/errors"

	"github.com/google/uuid"
)

// ErrVisitNotFound is returned when a visit row does not exist.
var ErrVisitNotFound = errors.New("visit not found")

// VisitRepository defines visit-history database operations. Visit rows are
// created at the point of sale; this interface only reads, amends and
// removes them.
type VisitRepository interface {
	// FindByCustomer retrieves all visits for a customer, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error)

	// FindByID retrieves a single visit row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// UpdateCard attaches a card (and optionally a review) to an existing
	// visit. Returns ErrVisitNotFound when no row was updated; it never
	// inserts.
	UpdateCard(ctx context.Context, id uuid.UUID, cardName string, review *string) error

	// UpdateReview replaces the review text of an existing visit.
	UpdateReview(ctx context.Context, id uuid.UUID, review *string) error

	// Delete removes a visit row. Counters on the customer are not touched.
	Delete(ctx context.Context, id uuid.UUID) error
}
