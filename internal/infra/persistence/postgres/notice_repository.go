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

// noticeRepository implements the repository.NoticeRepository interface.
type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository is the constructor for noticeRepository.
func NewNoticeRepository(db *gorm.DB) repository.NoticeRepository {
	return &noticeRepository{
		db: db,
	}
}

// FindPublished retrieves published notices, pinned first, then newest first.
func (repo *noticeRepository) FindPublished(ctx context.Context) ([]*entity.Notice, error) {
	var noticeModels []*model.NoticeModel

	if err := repo.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("is_pinned DESC, created_at DESC").
		Find(&noticeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published notices")
	}

	notices := make([]*entity.Notice, 0, len(noticeModels))
	for _, noticeM := range noticeModels {
		notices = append(notices, toNoticeDomain(noticeM))
	}

	return notices, nil
}

// FindPublishedIDs retrieves the ids of all published notices.
func (repo *noticeRepository) FindPublishedIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.NoticeModel{}).
		Where("is_published = ?", true).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published notice ids")
	}

	return ids, nil
}

// FindReadNoticeIDs retrieves the notice ids the customer has marked read.
func (repo *noticeRepository) FindReadNoticeIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.NoticeReadModel{}).
		Where("customer_id = ?", customerID).
		Pluck("notice_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find read notice ids")
	}

	return ids, nil
}

// MarkRead inserts a read marker. Racing or repeated inserts hit the unique
// pair constraint and surface as ErrDuplicateRead for the caller to swallow.
func (repo *noticeRepository) MarkRead(ctx context.Context, customerID, noticeID uuid.UUID) error {
	readM := &model.NoticeReadModel{
		CustomerID: customerID,
		NoticeID:   noticeID,
		ReadAt:     time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(readM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRead
		}

		return errors.Wrap(err, "failed to mark notice read")
	}

	return nil
}

// --- Mapper Functions ---

// toNoticeDomain converts a GORM NoticeModel to a domain Notice entity.
func toNoticeDomain(data *model.NoticeModel) *entity.Notice {
	if data == nil {
		return nil
	}

	return &entity.Notice{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		IsPinned:    data.IsPinned,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
	}
}
