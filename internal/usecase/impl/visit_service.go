package impl

import (
	"context"
	"unicode/utf8"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type visitService struct {
	visitRepo repository.VisitRepository
	config    *config.Config
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	VisitRepo repository.VisitRepository
	Config    *config.Config
}

// NewVisitService creates a new visit service instance
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		visitRepo: params.VisitRepo,
		config:    params.Config,
	}
}

// ListVisits retrieves the customer's visits, newest first.
func (s *visitService) ListVisits(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error) {
	visits, err := s.visitRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

// ListCards returns the card catalog.
func (s *visitService) ListCards() []entity.Card {
	return entity.Cards
}

// AttachCard records the card drawn on a visit, optionally with a review.
func (s *visitService) AttachCard(ctx context.Context, customerID, visitID uuid.UUID, cardName string, review *string) error {
	if _, ok := entity.CardByName(cardName); !ok {
		return domainerrors.ErrUnknownCard
	}

	if err := s.validateReview(review); err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, customerID, visitID); err != nil {
		return err
	}

	if err := s.visitRepo.UpdateCard(ctx, visitID, cardName, review); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return domainerrors.ErrVisitNotFound
		}

		return errors.Wrap(err, "failed to attach card")
	}

	return nil
}

// EditReview replaces the review text on a visit of the customer.
func (s *visitService) EditReview(ctx context.Context, customerID, visitID uuid.UUID, review *string) error {
	if err := s.validateReview(review); err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, customerID, visitID); err != nil {
		return err
	}

	if err := s.visitRepo.UpdateReview(ctx, visitID, review); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return domainerrors.ErrVisitNotFound
		}

		return errors.Wrap(err, "failed to edit review")
	}

	return nil
}

// DeleteVisit removes a visit row. Customer counters stay as they are.
func (s *visitService) DeleteVisit(ctx context.Context, customerID, visitID uuid.UUID) error {
	if err := s.checkOwnership(ctx, customerID, visitID); err != nil {
		return err
	}

	if err := s.visitRepo.Delete(ctx, visitID); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return domainerrors.ErrVisitNotFound
		}

		return errors.Wrap(err, "failed to delete visit")
	}

	return nil
}

// validateReview enforces the review length limit in runes, matching what
// customers type on screen.
func (s *visitService) validateReview(review *string) error {
	if review == nil {
		return nil
	}

	if utf8.RuneCountInString(*review) > s.config.Loyalty.ReviewMaxLength {
		return domainerrors.ErrReviewTooLong
	}

	return nil
}

// checkOwnership verifies the visit exists and belongs to the customer.
func (s *visitService) checkOwnership(ctx context.Context, customerID, visitID uuid.UUID) error {
	visit, err := s.visitRepo.FindByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return domainerrors.ErrVisitNotFound
		}

		return errors.Wrap(err, "failed to load visit")
	}

	if visit.CustomerID != customerID {
		return domainerrors.ErrForbidden
	}

	return nil
}
