package qrcode

import (
	"encoding/json"
	"fmt"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure scanned at the counter.
type QRCodeData struct {
	CouponID string `json:"coupon_id"`
	Code     string `json:"code"`
	Type     string `json:"type"`
}

const qrPayloadType = "coupon"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCouponQR renders a coupon as a PNG QR code.
func (s *qrcodeService) GenerateCouponQR(coupon *entity.Coupon) ([]byte, error) {
	data := QRCodeData{
		CouponID: coupon.ID.String(),
		Code:     coupon.Code,
		Type:     qrPayloadType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCouponQR parses scanned QR payload and returns the coupon id.
func (s *qrcodeService) ParseCouponQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrPayloadType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	couponID, err := uuid.Parse(data.CouponID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse coupon ID: %w", err)
	}

	return couponID, nil
}
