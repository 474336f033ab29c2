// Package impl contains the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"regexp"

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

// phonePattern is the only accepted phone shape. Anything else is rejected
// before any store access.
var phonePattern = regexp.MustCompile(`^010-\d{4}-\d{4}$`)

type identityService struct {
	customerRepo repository.CustomerRepository
	couponRepo   repository.CouponRepository
	tokenService service.TokenService
	config       *config.Config
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	CouponRepo   repository.CouponRepository
	TokenService service.TokenService
	Config       *config.Config
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		customerRepo: params.CustomerRepo,
		couponRepo:   params.CouponRepo,
		tokenService: params.TokenService,
		config:       params.Config,
	}
}

// Resolve validates a phone number and resolves it to a registered customer
// or a guest identity.
func (s *identityService) Resolve(ctx context.Context, phoneNumber string) (*usecase.ResolvedIdentity, error) {
	if !phonePattern.MatchString(phoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}

	customer, err := s.customerRepo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(err, "failed to resolve phone number")
		}

		if !s.config.Loyalty.AllowGuestLogin {
			return nil, domainerrors.ErrCustomerNotRegistered
		}

		customer = entity.NewGuest(phoneNumber)
	}

	token, err := s.tokenService.GenerateToken(customer.ID, customer.PhoneNumber, customer.IsGuest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.ResolvedIdentity{
		Customer: customer,
		Token:    token,
	}, nil
}

// Refresh re-reads the customer row.
func (s *identityService) Refresh(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to refresh customer")
	}

	return customer, nil
}

// RecomputeCounters recounts the live coupon rows and persists the result
// as the cached counter. The cache is always rewritten from a count, never
// adjusted in place.
func (s *identityService) RecomputeCounters(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	count, err := s.couponRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count coupons")
	}

	if err := s.customerRepo.UpdateCouponCount(ctx, customerID, count); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to persist coupon count")
	}

	return s.Refresh(ctx, customerID)
}
