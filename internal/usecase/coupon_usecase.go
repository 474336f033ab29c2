package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponBook is a customer's coupons partitioned by kind.
type CouponBook struct {
	Stamp    []*entity.Coupon `json:"stamp"`
	Birthday []*entity.Coupon `json:"birthday"`
	Other    []*entity.Coupon `json:"other"`
	Total    int              `json:"total"`
}

// RedeemResult reports the outcome of a redemption: the cached counter
// value after the recount.
type RedeemResult struct {
	RemainingCoupons int `json:"remaining_coupons"`
}

// CouponUsecase defines the interface for coupon lifecycle use cases
type CouponUsecase interface {
	// ListCoupons retrieves the customer's coupons partitioned by kind,
	// newest issued first within each partition.
	ListCoupons(ctx context.Context, customerID uuid.UUID) (*CouponBook, error)

	// Redeem deletes a coupon after checking ownership, the shared counter
	// secret and the validity window, then recounts the remaining rows and
	// persists the fresh cached counter.
	Redeem(ctx context.Context, customerID, couponID uuid.UUID, secret string) (*RedeemResult, error)

	// CouponQR renders the customer's coupon as a PNG QR code for
	// counter-side scanning.
	CouponQR(ctx context.Context, customerID, couponID uuid.UUID) ([]byte, error)
}
