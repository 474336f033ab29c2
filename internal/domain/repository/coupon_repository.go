package repository

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/errors"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when a coupon row does not exist.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines coupon-history database operations. Coupons are
// issued out of band; this interface reads, counts and deletes them.
type CouponRepository interface {
	// FindByCustomer retrieves all coupons for a customer, newest issued
	// first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Coupon, error)

	// FindByID retrieves a single coupon row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// Delete removes a redeemed coupon row. Returns ErrCouponNotFound when
	// the row was already gone.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCustomer counts the live coupon rows for a customer. This is
	// the authoritative value behind the cached customer counter.
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
}
