package impl

import (
	"context"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type couponService struct {
	couponRepo     repository.CouponRepository
	customerRepo   repository.CustomerRepository
	secretVerifier service.SecretVerifier
	qrcodeService  service.QRCodeService
	config         *config.Config
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo     repository.CouponRepository
	CustomerRepo   repository.CustomerRepository
	SecretVerifier service.SecretVerifier
	QRCodeService  service.QRCodeService
	Config         *config.Config
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo:     params.CouponRepo,
		customerRepo:   params.CustomerRepo,
		secretVerifier: params.SecretVerifier,
		qrcodeService:  params.QRCodeService,
		config:         params.Config,
	}
}

// ListCoupons retrieves the customer's coupons partitioned by kind.
func (s *couponService) ListCoupons(ctx context.Context, customerID uuid.UUID) (*usecase.CouponBook, error) {
	coupons, err := s.couponRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	book := &usecase.CouponBook{
		Stamp:    []*entity.Coupon{},
		Birthday: []*entity.Coupon{},
		Other:    []*entity.Coupon{},
		Total:    len(coupons),
	}
	for _, coupon := range coupons {
		switch coupon.Kind {
		case entity.CouponKindStamp:
			book.Stamp = append(book.Stamp, coupon)
		case entity.CouponKindBirthday:
			book.Birthday = append(book.Birthday, coupon)
		default:
			book.Other = append(book.Other, coupon)
		}
	}

	return book, nil
}

// Redeem deletes a coupon and rewrites the cached counter from a fresh
// count. The precondition checks run in a fixed order so the client always
// sees the same failure for the same state.
func (s *couponService) Redeem(ctx context.Context, customerID, couponID uuid.UUID, secret string) (*usecase.RedeemResult, error) {
	coupon, err := s.findOwnedCoupon(ctx, customerID, couponID)
	if err != nil {
		return nil, err
	}

	if !s.secretVerifier.Verify(secret, s.config.Loyalty.AdminSecretHash) {
		return nil, domainerrors.ErrAdminSecretMismatch
	}

	if !coupon.IsRedeemable(time.Now()) {
		return nil, domainerrors.ErrCouponExpired
	}

	if err := s.couponRepo.Delete(ctx, couponID); err != nil {
		// A concurrent redemption already removed the row.
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to delete coupon")
	}

	count, err := s.couponRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recount coupons")
	}

	if err := s.customerRepo.UpdateCouponCount(ctx, customerID, count); err != nil {
		return nil, errors.Wrap(err, "failed to persist coupon count")
	}

	return &usecase.RedeemResult{RemainingCoupons: count}, nil
}

// CouponQR renders the customer's coupon as a PNG QR code.
func (s *couponService) CouponQR(ctx context.Context, customerID, couponID uuid.UUID) ([]byte, error) {
	coupon, err := s.findOwnedCoupon(ctx, customerID, couponID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateCouponQR(coupon)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate coupon QR code")
	}

	return png, nil
}

// findOwnedCoupon loads a coupon and verifies it belongs to the customer.
func (s *couponService) findOwnedCoupon(ctx context.Context, customerID, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to load coupon")
	}

	if coupon.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden
	}

	return coupon, nil
}
