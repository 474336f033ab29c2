package qrcode

import (
	"encoding/json"
	"testing"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	coupon := &entity.Coupon{
		ID:   uuid.New(),
		Code: "COUPON-2026-001",
	}

	qrBytes, err := service.GenerateCouponQR(coupon)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	couponID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		CouponID: couponID.String(),
		Code:     "COUPON-2026-001",
		Type:     "coupon",
	})
	require.NoError(t, err)

	parsed, err := service.ParseCouponQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, couponID, parsed)
}

func TestQRCodeService_ParseCouponQR_InvalidPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not-json-at-all"},
		{"wrong type", `{"coupon_id":"` + uuid.New().String() + `","code":"C","type":"subscription"}`},
		{"bad coupon id", `{"coupon_id":"not-a-uuid","code":"C","type":"coupon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := service.ParseCouponQR(tt.payload)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsed)
		})
	}
}
