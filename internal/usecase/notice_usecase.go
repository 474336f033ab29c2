package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// NoticeView pairs a notice with the customer's read state and the parsed
// content segments.
type NoticeView struct {
	Notice   *entity.Notice         `json:"notice"`
	IsRead   bool                   `json:"is_read"`
	Segments []entity.NoticeSegment `json:"segments"`
}

// UnreadBadge is the combined unread indicator shown on the client icon.
type UnreadBadge struct {
	UnreadNotices   int `json:"unread_notices"`
	UnreadResponses int `json:"unread_responses"`
	Total           int `json:"total"`
}

// NoticeUsecase defines the interface for notice and read-state use cases
type NoticeUsecase interface {
	// ListNotices retrieves published notices, pinned first then newest
	// first, annotated with the customer's read state. A nil customer id
	// (guest) yields every notice unread.
	ListNotices(ctx context.Context, customerID *uuid.UUID) ([]*NoticeView, error)

	// UnreadNoticeCount counts published notices the customer has not
	// marked read.
	UnreadNoticeCount(ctx context.Context, customerID uuid.UUID) (int, error)

	// MarkAllRead inserts a read marker for every published notice the
	// customer has not read yet. Safe to repeat.
	MarkAllRead(ctx context.Context, customerID uuid.UUID) error

	// UnreadBadge combines the unread notice count with the unread report
	// response count.
	UnreadBadge(ctx context.Context, customerID uuid.UUID) (*UnreadBadge, error)
}
