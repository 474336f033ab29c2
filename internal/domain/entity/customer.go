// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a loyalty customer identified by phone number.
// Guests (unregistered numbers) carry a nil ID and zeroed counters.
type Customer struct {
	ID            *uuid.UUID `json:"id"`             // Row id; nil for guest identities.
	PhoneNumber   string     `json:"phone_number"`   // Unique key, 010-XXXX-XXXX.
	Nickname      string     `json:"nickname"`       // Display name; last 4 digits for guests.
	CurrentStamps int        `json:"current_stamps"` // Stamps toward the next coupon, 0..MaxStamps.
	TotalStamps   int        `json:"total_stamps"`   // Lifetime stamps granted.
	VisitCount    int        `json:"visit_count"`    // Monotonic visit counter.
	Coupons       int        `json:"coupons"`        // Cached live coupon count; the coupon rows stay authoritative.
	BirthDate     *time.Time `json:"birth_date"`     // Optional, drives birthday coupon issuance out of band.
	IsGuest       bool       `json:"is_guest"`       // True when the phone number has no customer row.
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewGuest synthesizes an ephemeral identity for an unregistered phone
// number. The nickname is the last 4 digits of the number.
func NewGuest(phoneNumber string) *Customer {
	nickname := phoneNumber
	if len(phoneNumber) >= 4 {
		nickname = phoneNumber[len(phoneNumber)-4:]
	}

	return &Customer{
		PhoneNumber: phoneNumber,
		Nickname:    nickname,
		IsGuest:     true,
	}
}
