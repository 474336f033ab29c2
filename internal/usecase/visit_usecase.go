package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitUsecase defines the interface for visit-history use cases
type VisitUsecase interface {
	// ListVisits retrieves the customer's visits, newest first.
	ListVisits(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error)

	// ListCards returns the card catalog a visit can be decorated with.
	ListCards() []entity.Card

	// AttachCard records the card drawn on a visit, optionally with a
	// review. The visit must belong to the customer and the card must be
	// in the catalog.
	AttachCard(ctx context.Context, customerID, visitID uuid.UUID, cardName string, review *string) error

	// EditReview replaces the review text on a visit of the customer.
	EditReview(ctx context.Context, customerID, visitID uuid.UUID, review *string) error

	// DeleteVisit removes a visit row. Stamp and visit counters on the
	// customer are left as they are.
	DeleteVisit(ctx context.Context, customerID, visitID uuid.UUID) error
}
