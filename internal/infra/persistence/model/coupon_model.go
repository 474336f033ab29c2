package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel is the GORM-specific struct for the 'coupon_history' table.
// The coupon type is never stored; it is derived from the code prefix at
// the domain boundary.
type CouponModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CouponCode string     `gorm:"type:text;not null"`
	IssuedAt   time.Time  `gorm:"not null"`
	ValidUntil *time.Time // NULL = no expiry.
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupon_history"
}
