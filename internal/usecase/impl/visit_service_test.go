package impl

import (
	"context"
	"strings"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// visitServiceFixtures holds all test dependencies for visit service tests.
type visitServiceFixtures struct {
	service   usecase.VisitUsecase
	visitRepo *mockRepo.MockVisitRepository
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	visitRepo := mockRepo.NewMockVisitRepository(t)
	cfg := &config.Config{
		Loyalty: &config.LoyaltyConfig{
			ReviewMaxLength: 100,
		},
	}

	service := NewVisitService(VisitServiceParams{
		VisitRepo: visitRepo,
		Config:    cfg,
	})

	return visitServiceFixtures{
		service:   service,
		visitRepo: visitRepo,
	}
}

func TestVisitService_ListVisits(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	customerID := uuid.New()
	visits := []*entity.Visit{
		{ID: uuid.New(), CustomerID: customerID, StampsAdded: 1},
		{ID: uuid.New(), CustomerID: customerID},
	}

	fx.visitRepo.EXPECT().
		FindByCustomer(ctx, customerID).
		Return(visits, nil)

	got, err := fx.service.ListVisits(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, visits, got)
}

func TestVisitService_ListCards(t *testing.T) {
	fx := createTestVisitService(t)

	cards := fx.service.ListCards()
	assert.Len(t, cards, 10)
	assert.Equal(t, "The Fool", cards[0].Name)
}

func TestVisitService_AttachCard_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	customerID := uuid.New()
	visitID := uuid.New()
	review := "좋은 하루였다"

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(&entity.Visit{ID: visitID, CustomerID: customerID}, nil)

	fx.visitRepo.EXPECT().
		UpdateCard(ctx, visitID, "The Sun", &review).
		Return(nil)

	err := fx.service.AttachCard(ctx, customerID, visitID, "The Sun", &review)
	require.NoError(t, err)
}

func TestVisitService_AttachCard_UnknownCard(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	err := fx.service.AttachCard(ctx, uuid.New(), uuid.New(), "The Tower", nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCard)
}

func TestVisitService_AttachCard_ReviewAtLimit(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	customerID := uuid.New()
	visitID := uuid.New()
	// Exactly 100 runes passes; the limit counts characters, not bytes.
	review := strings.Repeat("가", 100)

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(&entity.Visit{ID: visitID, CustomerID: customerID}, nil)

	fx.visitRepo.EXPECT().
		UpdateCard(ctx, visitID, "The Moon", &review).
		Return(nil)

	err := fx.service.AttachCard(ctx, customerID, visitID, "The Moon", &review)
	require.NoError(t, err)
}

func TestVisitService_AttachCard_ReviewTooLong(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	review := strings.Repeat("가", 101)

	err := fx.service.AttachCard(ctx, uuid.New(), uuid.New(), "The Moon", &review)
	assert.ErrorIs(t, err, domainerrors.ErrReviewTooLong)
}

func TestVisitService_AttachCard_NotOwned(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visitID := uuid.New()

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(&entity.Visit{ID: visitID, CustomerID: uuid.New()}, nil)

	err := fx.service.AttachCard(ctx, uuid.New(), visitID, "The Star", nil)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVisitService_EditReview_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	customerID := uuid.New()
	visitID := uuid.New()
	review := "다시 와야지"

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(&entity.Visit{ID: visitID, CustomerID: customerID}, nil)

	fx.visitRepo.EXPECT().
		UpdateReview(ctx, visitID, &review).
		Return(nil)

	err := fx.service.EditReview(ctx, customerID, visitID, &review)
	require.NoError(t, err)
}

func TestVisitService_EditReview_ClearReview(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	customerID := uuid.New()
	visitID := uuid.New()

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(&entity.Visit{ID: visitID, CustomerID: customerID}, nil)

	fx.visitRepo.EXPECT().
		UpdateReview(ctx, visitID, (*string)(nil)).
		Return(nil)

	err := fx.service.EditReview(ctx, customerID, visitID, nil)
	require.NoError(t, err)
}

func TestVisitService_DeleteVisit_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	customerID := uuid.New()
	visitID := uuid.New()

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(&entity.Visit{ID: visitID, CustomerID: customerID}, nil)

	fx.visitRepo.EXPECT().
		Delete(ctx, visitID).
		Return(nil)

	err := fx.service.DeleteVisit(ctx, customerID, visitID)
	require.NoError(t, err)
}

func TestVisitService_DeleteVisit_NotFound(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visitID := uuid.New()

	fx.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(nil, repository.ErrVisitNotFound)

	err := fx.service.DeleteVisit(ctx, uuid.New(), visitID)
	assert.ErrorIs(t, err, domainerrors.ErrVisitNotFound)
}
