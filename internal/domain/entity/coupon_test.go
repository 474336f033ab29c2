package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCoupon(t *testing.T) {
	tests := []struct {
		code string
		want CouponKind
	}{
		{"COUPON-2026-001", CouponKindStamp},
		{"STAMP-2026-001", CouponKindStamp},
		{"BIRTHDAY-2026", CouponKindBirthday},
		{"BIRTH-2026", CouponKindBirthday},
		{"PROMO-XYZ", CouponKindUnknown},
		{"", CouponKindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCoupon(tt.code), "code %q", tt.code)
	}
}

func TestCoupon_IsRedeemable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	noExpiry := &Coupon{}
	assert.True(t, noExpiry.IsRedeemable(now))

	valid := &Coupon{ValidUntil: &future}
	assert.True(t, valid.IsRedeemable(now))

	expired := &Coupon{ValidUntil: &past}
	assert.False(t, expired.IsRedeemable(now))

	// Expiring exactly now is still redeemable.
	boundary := &Coupon{ValidUntil: &now}
	assert.True(t, boundary.IsRedeemable(now))
}
