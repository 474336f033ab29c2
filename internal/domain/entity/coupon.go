package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CouponKind is the explicit coupon type tag. It is derived from the code
// prefix exactly once, at the persistence boundary; the rest of the engine
// never re-inspects the raw code.
type CouponKind string

const (
	CouponKindStamp    CouponKind = "stamp"
	CouponKindBirthday CouponKind = "birthday"
	CouponKindUnknown  CouponKind = "unknown"
)

// ClassifyCoupon derives the coupon kind from the code prefix.
// Stamp coupons are issued as COUPON-* or STAMP-*, birthday coupons as
// BIRTHDAY-* or BIRTH-*.
func ClassifyCoupon(code string) CouponKind {
	switch {
	case strings.HasPrefix(code, "COUPON"), strings.HasPrefix(code, "STAMP"):
		return CouponKindStamp
	case strings.HasPrefix(code, "BIRTHDAY"), strings.HasPrefix(code, "BIRTH"):
		return CouponKindBirthday
	default:
		return CouponKindUnknown
	}
}

// Coupon represents a live coupon row. Redemption deletes the row; there is
// no "used" state.
type Coupon struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Code       string     `json:"coupon_code"`
	Kind       CouponKind `json:"kind"`        // Derived from Code via ClassifyCoupon.
	IssuedAt   time.Time  `json:"issued_at"`
	ValidUntil *time.Time `json:"valid_until"` // nil = no expiry.
}

// IsRedeemable reports whether the coupon can be redeemed at the given
// time. Expired coupons stay visible but cannot be redeemed.
func (c *Coupon) IsRedeemable(now time.Time) bool {
	return c.ValidUntil == nil || !c.ValidUntil.Before(now)
}
