// Package model contains the GORM-specific row structs for the loyalty
// tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
// The coupons column is a cache over coupon_history; it is rewritten from a
// fresh count after every coupon mutation and never trusted as a source.
type CustomerModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber   string     `gorm:"type:text;not null;uniqueIndex"`
	Nickname      string     `gorm:"type:text;not null"`
	CurrentStamps int        `gorm:"not null;default:0"`
	TotalStamps   int        `gorm:"not null;default:0"`
	VisitCount    int        `gorm:"not null;default:0"`
	Coupons       int        `gorm:"not null;default:0"`
	BirthDate     *time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
