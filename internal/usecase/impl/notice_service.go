package impl

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type noticeService struct {
	noticeRepo repository.NoticeRepository
	reportRepo repository.ReportRepository
}

// NoticeServiceParams holds dependencies for NoticeService, injected by Fx.
type NoticeServiceParams struct {
	fx.In

	NoticeRepo repository.NoticeRepository
	ReportRepo repository.ReportRepository
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(params NoticeServiceParams) usecase.NoticeUsecase {
	return &noticeService{
		noticeRepo: params.NoticeRepo,
		reportRepo: params.ReportRepo,
	}
}

// ListNotices retrieves published notices annotated with read state and
// parsed content segments. Guests see everything unread.
func (s *noticeService) ListNotices(ctx context.Context, customerID *uuid.UUID) ([]*usecase.NoticeView, error) {
	notices, err := s.noticeRepo.FindPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notices")
	}

	readSet := map[uuid.UUID]struct{}{}
	if customerID != nil {
		readIDs, err := s.noticeRepo.FindReadNoticeIDs(ctx, *customerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load read notice ids")
		}
		for _, id := range readIDs {
			readSet[id] = struct{}{}
		}
	}

	views := make([]*usecase.NoticeView, 0, len(notices))
	for _, notice := range notices {
		_, read := readSet[notice.ID]
		views = append(views, &usecase.NoticeView{
			Notice:   notice,
			IsRead:   read,
			Segments: entity.ParseMarkup(notice.Content),
		})
	}

	return views, nil
}

// UnreadNoticeCount counts published notices without a read marker. Stale
// markers for removed notices do not skew the count.
func (s *noticeService) UnreadNoticeCount(ctx context.Context, customerID uuid.UUID) (int, error) {
	unread, err := s.unreadNoticeIDs(ctx, customerID)
	if err != nil {
		return 0, err
	}

	return len(unread), nil
}

// MarkAllRead inserts a read marker for every published notice the customer
// has not read yet. Duplicate markers from racing calls are swallowed.
func (s *noticeService) MarkAllRead(ctx context.Context, customerID uuid.UUID) error {
	unread, err := s.unreadNoticeIDs(ctx, customerID)
	if err != nil {
		return err
	}

	for _, noticeID := range unread {
		if err := s.noticeRepo.MarkRead(ctx, customerID, noticeID); err != nil {
			if errors.Is(err, repository.ErrDuplicateRead) {
				continue
			}

			return errors.Wrap(err, "failed to mark notice read")
		}
	}

	return nil
}

// UnreadBadge combines the unread notice count with the unread report
// response count.
func (s *noticeService) UnreadBadge(ctx context.Context, customerID uuid.UUID) (*usecase.UnreadBadge, error) {
	unreadNotices, err := s.UnreadNoticeCount(ctx, customerID)
	if err != nil {
		return nil, err
	}

	unreadResponses, err := s.reportRepo.CountUnreadResponses(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread report responses")
	}

	return &usecase.UnreadBadge{
		UnreadNotices:   unreadNotices,
		UnreadResponses: unreadResponses,
		Total:           unreadNotices + unreadResponses,
	}, nil
}

// unreadNoticeIDs returns the published notice ids the customer has not
// marked read.
func (s *noticeService) unreadNoticeIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	publishedIDs, err := s.noticeRepo.FindPublishedIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load published notice ids")
	}

	readIDs, err := s.noticeRepo.FindReadNoticeIDs(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load read notice ids")
	}

	readSet := make(map[uuid.UUID]struct{}, len(readIDs))
	for _, id := range readIDs {
		readSet[id] = struct{}{}
	}

	unread := make([]uuid.UUID, 0, len(publishedIDs))
	for _, id := range publishedIDs {
		if _, ok := readSet[id]; !ok {
			unread = append(unread, id)
		}
	}

	return unread, nil
}
