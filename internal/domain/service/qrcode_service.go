package service

import (
	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeService defines the interface for coupon presentation codes shown
// at the counter.
type QRCodeService interface {
	// GenerateCouponQR renders a coupon as a PNG QR code.
	GenerateCouponQR(coupon *entity.Coupon) ([]byte, error)

	// ParseCouponQR parses scanned QR payload and returns the coupon id.
	ParseCouponQR(qrData string) (uuid.UUID, error)
}
