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

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// FindByCustomer retrieves all visits for a customer, newest first.
func (repo *visitRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("visit_date DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by customer")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// FindByID retrieves a single visit row.
func (repo *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by id")
	}

	return toVisitDomain(&visitM), nil
}

// UpdateCard attaches a card (and optionally a review) to an existing visit.
// The filter deliberately targets only the existing row; a missing visit is
// reported, never inserted.
func (repo *visitRepository) UpdateCard(ctx context.Context, id uuid.UUID, cardName string, review *string) error {
	updates := map[string]any{
		"selected_card": cardName,
	}
	if review != nil {
		updates["card_review"] = review
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update visit card")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// UpdateReview replaces the review text of an existing visit.
func (repo *visitRepository) UpdateReview(ctx context.Context, id uuid.UUID, review *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ?", id).
		Update("card_review", review)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update visit review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// Delete removes a visit row. Customer counters are left untouched; only
// the row disappears.
func (repo *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VisitModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete visit")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVisitDomain converts a GORM VisitModel to a domain Visit entity.
func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		VisitDate:    data.VisitDate,
		SelectedCard: data.SelectedCard,
		CardReview:   data.CardReview,
		StampsAdded:  data.StampsAdded,
		CreatedAt:    data.CreatedAt,
	}
}
