package repository

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateRead is returned when inserting a read marker that already
// exists. Callers swallow it; marking a notice read twice is a no-op.
var ErrDuplicateRead = errors.New("notice read marker already exists")

// NoticeRepository defines notice and read-marker database operations.
type NoticeRepository interface {
	// FindPublished retrieves published notices, pinned first, then newest
	// first.
	FindPublished(ctx context.Context) ([]*entity.Notice, error)

	// FindPublishedIDs retrieves the ids of all published notices.
	FindPublishedIDs(ctx context.Context) ([]uuid.UUID, error)

	// FindReadNoticeIDs retrieves the notice ids the customer has marked
	// read.
	FindReadNoticeIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error)

	// MarkRead inserts a read marker. Returns ErrDuplicateRead when the
	// marker already exists.
	MarkRead(ctx context.Context, customerID, noticeID uuid.UUID) error
}
