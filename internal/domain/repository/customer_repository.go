// Package repository defines the interfaces for the persistence layer.
// Every method maps to one independently atomic store call; there are no
// cross-table transactions behind these interfaces.
package repository

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer row matches.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository defines customer-identity database operations.
type CustomerRepository interface {
	// FindByPhone retrieves a customer by the unique phone number.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.Customer, error)

	// FindByID retrieves a customer by row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// UpdateCouponCount persists a freshly recomputed coupon cache value.
	// The count must come from CouponRepository.CountByCustomer, never from
	// in-place arithmetic on the previous cache value.
	UpdateCouponCount(ctx context.Context, id uuid.UUID, count int) error
}
