package postgres

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pollRepository implements the repository.PollRepository interface.
type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository is the constructor for pollRepository.
func NewPollRepository(db *gorm.DB) repository.PollRepository {
	return &pollRepository{
		db: db,
	}
}

// FindOpenPolls retrieves active polls, newest first.
func (repo *pollRepository) FindOpenPolls(ctx context.Context) ([]*entity.Poll, error) {
	var pollModels []*model.PollModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&pollModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open polls")
	}

	polls := make([]*entity.Poll, 0, len(pollModels))
	for _, pollM := range pollModels {
		polls = append(polls, toPollDomain(pollM))
	}

	return polls, nil
}

// FindByID retrieves a single poll row.
func (repo *pollRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	var pollM model.PollModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pollM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPollNotFound
		}

		return nil, errors.Wrap(err, "failed to find poll by id")
	}

	return toPollDomain(&pollM), nil
}

// FindResponse retrieves the voter's response for a poll.
func (repo *pollRepository) FindResponse(ctx context.Context, pollID, customerID uuid.UUID) (*entity.PollResponse, error) {
	var responseM model.PollResponseModel

	if err := repo.db.WithContext(ctx).
		Where("vote_id = ? AND customer_id = ?", pollID, customerID).
		First(&responseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResponseNotFound
		}

		return nil, errors.Wrap(err, "failed to find poll response")
	}

	return toPollResponseDomain(&responseM), nil
}

// FindResponsesByPoll retrieves all response rows for a poll.
func (repo *pollRepository) FindResponsesByPoll(ctx context.Context, pollID uuid.UUID) ([]*entity.PollResponse, error) {
	var responseModels []*model.PollResponseModel

	if err := repo.db.WithContext(ctx).
		Where("vote_id = ?", pollID).
		Find(&responseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find poll responses")
	}

	responses := make([]*entity.PollResponse, 0, len(responseModels))
	for _, responseM := range responseModels {
		responses = append(responses, toPollResponseDomain(responseM))
	}

	return responses, nil
}

// CreateResponse inserts a new response row. A concurrent first vote loses
// the insert race and gets ErrDuplicateResponse so the caller can fall back
// to an update.
func (repo *pollRepository) CreateResponse(ctx context.Context, response *entity.PollResponse) error {
	responseM := fromPollResponseDomain(response)

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateResponse
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPollNotFound
		}

		return errors.Wrap(err, "failed to create poll response")
	}

	response.ID = responseM.ID

	return nil
}

// UpdateResponse replaces the selected options of an existing response in
// place.
func (repo *pollRepository) UpdateResponse(ctx context.Context, id uuid.UUID, selectedOptions []int64, votedAt time.Time) error {
	// Struct-based update so the jsonb serializer on selected_options runs.
	result := repo.db.WithContext(ctx).
		Model(&model.PollResponseModel{}).
		Where("id = ?", id).
		Select("selected_options", "voted_at").
		Updates(&model.PollResponseModel{
			SelectedOptions: selectedOptions,
			VotedAt:         votedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update poll response")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResponseNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPollDomain converts a GORM PollModel to a domain Poll entity.
func toPollDomain(data *model.PollModel) *entity.Poll {
	if data == nil {
		return nil
	}

	return &entity.Poll{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Options:       data.Options,
		AllowMultiple: data.AllowMultiple,
		MaxSelections: data.MaxSelections,
		IsAnonymous:   data.IsAnonymous,
		IsActive:      data.IsActive,
		EndsAt:        data.EndsAt,
		CreatedAt:     data.CreatedAt,
	}
}

// toPollResponseDomain converts a GORM PollResponseModel to a domain
// PollResponse entity.
func toPollResponseDomain(data *model.PollResponseModel) *entity.PollResponse {
	if data == nil {
		return nil
	}

	return &entity.PollResponse{
		ID:              data.ID,
		PollID:          data.VoteID,
		CustomerID:      data.CustomerID,
		SelectedOptions: data.SelectedOptions,
		VotedAt:         data.VotedAt,
	}
}

// fromPollResponseDomain converts a domain PollResponse entity to a GORM
// PollResponseModel for persistence.
func fromPollResponseDomain(data *entity.PollResponse) *model.PollResponseModel {
	if data == nil {
		return nil
	}

	return &model.PollResponseModel{
		ID:              data.ID,
		VoteID:          data.PollID,
		CustomerID:      data.CustomerID,
		SelectedOptions: data.SelectedOptions,
		VotedAt:         data.VotedAt,
	}
}
