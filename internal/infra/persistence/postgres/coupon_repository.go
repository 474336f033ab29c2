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

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCustomer retrieves all coupons for a customer, newest issued first.
func (repo *couponRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("issued_at DESC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find coupons by customer")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// FindByID retrieves a single coupon row.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by id")
	}

	return toCouponDomain(&couponM), nil
}

// Delete removes a redeemed coupon row.
func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// CountByCustomer counts the live coupon rows for a customer.
func (repo *couponRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count coupons by customer")
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
// The kind is derived from the code prefix; it is never persisted.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Code:       data.CouponCode,
		Kind:       entity.ClassifyCoupon(data.CouponCode),
		IssuedAt:   data.IssuedAt,
		ValidUntil: data.ValidUntil,
	}
}
