package impl

import (
	"context"
	"testing"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	mockSvc "stampcard/internal/mocks/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminSecretHash = "$2a$10$abcdefghijklmnopqrstuv"

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service        usecase.CouponUsecase
	couponRepo     *mockRepo.MockCouponRepository
	customerRepo   *mockRepo.MockCustomerRepository
	secretVerifier *mockSvc.MockSecretVerifier
	qrcodeService  *mockSvc.MockQRCodeService
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	secretVerifier := mockSvc.NewMockSecretVerifier(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{
		Loyalty: &config.LoyaltyConfig{
			AdminSecretHash: testAdminSecretHash,
		},
	}

	service := NewCouponService(CouponServiceParams{
		CouponRepo:     couponRepo,
		CustomerRepo:   customerRepo,
		SecretVerifier: secretVerifier,
		QRCodeService:  qrcodeService,
		Config:         cfg,
	})

	return couponServiceFixtures{
		service:        service,
		couponRepo:     couponRepo,
		customerRepo:   customerRepo,
		secretVerifier: secretVerifier,
		qrcodeService:  qrcodeService,
	}
}

func TestCouponService_ListCoupons_PartitionsByKind(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()
	coupons := []*entity.Coupon{
		{ID: uuid.New(), CustomerID: customerID, Code: "COUPON-2026-001", Kind: entity.CouponKindStamp},
		{ID: uuid.New(), CustomerID: customerID, Code: "BIRTHDAY-2026", Kind: entity.CouponKindBirthday},
		{ID: uuid.New(), CustomerID: customerID, Code: "STAMP-2026-002", Kind: entity.CouponKindStamp},
		{ID: uuid.New(), CustomerID: customerID, Code: "PROMO-XYZ", Kind: entity.CouponKindUnknown},
	}

	fx.couponRepo.EXPECT().
		FindByCustomer(ctx, customerID).
		Return(coupons, nil)

	book, err := fx.service.ListCoupons(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, book.Stamp, 2)
	assert.Len(t, book.Birthday, 1)
	assert.Len(t, book.Other, 1)
	assert.Equal(t, 4, book.Total)
}

func TestCouponService_ListCoupons_Empty(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.couponRepo.EXPECT().
		FindByCustomer(ctx, customerID).
		Return([]*entity.Coupon{}, nil)

	book, err := fx.service.ListCoupons(ctx, customerID)
	require.NoError(t, err)
	assert.NotNil(t, book.Stamp)
	assert.NotNil(t, book.Birthday)
	assert.NotNil(t, book.Other)
	assert.Equal(t, 0, book.Total)
}

func TestCouponService_Redeem_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()
	couponID := uuid.New()
	coupon := &entity.Coupon{
		ID:         couponID,
		CustomerID: customerID,
		Code:       "COUPON-2026-001",
		Kind:       entity.CouponKindStamp,
	}

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(coupon, nil)

	fx.secretVerifier.EXPECT().
		Verify("1234", testAdminSecretHash).
		Return(true)

	fx.couponRepo.EXPECT().
		Delete(ctx, couponID).
		Return(nil)

	fx.couponRepo.EXPECT().
		CountByCustomer(ctx, customerID).
		Return(2, nil)

	fx.customerRepo.EXPECT().
		UpdateCouponCount(ctx, customerID, 2).
		Return(nil)

	result, err := fx.service.Redeem(ctx, customerID, couponID, "1234")
	require.NoError(t, err)
	assert.Equal(t, 2, result.RemainingCoupons)
}

func TestCouponService_Redeem_WrongSecret(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(&entity.Coupon{ID: couponID, CustomerID: customerID}, nil)

	fx.secretVerifier.EXPECT().
		Verify("wrong", testAdminSecretHash).
		Return(false)

	result, err := fx.service.Redeem(ctx, customerID, couponID, "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrAdminSecretMismatch)
	assert.Nil(t, result)
}

func TestCouponService_Redeem_Expired(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()
	couponID := uuid.New()
	expired := time.Now().Add(-24 * time.Hour)

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(&entity.Coupon{
			ID:         couponID,
			CustomerID: customerID,
			ValidUntil: &expired,
		}, nil)

	fx.secretVerifier.EXPECT().
		Verify("1234", testAdminSecretHash).
		Return(true)

	result, err := fx.service.Redeem(ctx, customerID, couponID, "1234")
	assert.ErrorIs(t, err, domainerrors.ErrCouponExpired)
	assert.Nil(t, result)
}

func TestCouponService_Redeem_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(nil, repository.ErrCouponNotFound)

	result, err := fx.service.Redeem(ctx, uuid.New(), couponID, "1234")
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
	assert.Nil(t, result)
}

func TestCouponService_Redeem_NotOwned(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(&entity.Coupon{ID: couponID, CustomerID: uuid.New()}, nil)

	result, err := fx.service.Redeem(ctx, uuid.New(), couponID, "1234")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, result)
}

func TestCouponService_Redeem_ConcurrentDelete(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(&entity.Coupon{ID: couponID, CustomerID: customerID}, nil)

	fx.secretVerifier.EXPECT().
		Verify("1234", testAdminSecretHash).
		Return(true)

	fx.couponRepo.EXPECT().
		Delete(ctx, couponID).
		Return(repository.ErrCouponNotFound)

	result, err := fx.service.Redeem(ctx, customerID, couponID, "1234")
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
	assert.Nil(t, result)
}

func TestCouponService_CouponQR_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	customerID := uuid.New()
	couponID := uuid.New()
	coupon := &entity.Coupon{ID: couponID, CustomerID: customerID, Code: "COUPON-2026-001"}

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(coupon, nil)

	fx.qrcodeService.EXPECT().
		GenerateCouponQR(coupon).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.CouponQR(ctx, customerID, couponID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestCouponService_CouponQR_NotOwned(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().
		FindByID(ctx, couponID).
		Return(&entity.Coupon{ID: couponID, CustomerID: uuid.New()}, nil)

	png, err := fx.service.CouponQR(ctx, uuid.New(), couponID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, png)
}
