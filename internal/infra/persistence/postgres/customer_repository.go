// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByPhone retrieves a customer by the unique phone number.
func (repo *customerRepository) FindByPhone(ctx context.Context, phoneNumber string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone number")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByID retrieves a customer by row id.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateCouponCount persists a freshly recomputed coupon cache value.
func (repo *customerRepository) UpdateCouponCount(ctx context.Context, id uuid.UUID, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Update("coupons", count)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coupon count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	id := data.ID

	return &entity.Customer{
		ID:            &id,
		PhoneNumber:   data.PhoneNumber,
		Nickname:      data.Nickname,
		CurrentStamps: data.CurrentStamps,
		TotalStamps:   data.TotalStamps,
		VisitCount:    data.VisitCount,
		Coupons:       data.Coupons,
		BirthDate:     data.BirthDate,
		IsGuest:       false,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
