package impl

import (
	"context"
	"testing"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noticeServiceFixtures holds all test dependencies for notice service tests.
type noticeServiceFixtures struct {
	service    usecase.NoticeUsecase
	noticeRepo *mockRepo.MockNoticeRepository
	reportRepo *mockRepo.MockReportRepository
}

func createTestNoticeService(t *testing.T) noticeServiceFixtures {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	reportRepo := mockRepo.NewMockReportRepository(t)

	service := NewNoticeService(NoticeServiceParams{
		NoticeRepo: noticeRepo,
		ReportRepo: reportRepo,
	})

	return noticeServiceFixtures{
		service:    service,
		noticeRepo: noticeRepo,
		reportRepo: reportRepo,
	}
}

func TestNoticeService_ListNotices_MarksReadState(t *testing.T) {
	fx := createTestNoticeService(t)

	ctx := context.Background()
	customerID := uuid.New()
	read := &entity.Notice{ID: uuid.New(), Title: "영업시간 안내", Content: "매일 10시 오픈"}
	unread := &entity.Notice{ID: uuid.New(), Title: "이벤트", Content: "자세한 내용은 [여기](https://example.com)에서"}

	fx.noticeRepo.EXPECT().
		FindPublished(ctx).
		Return([]*entity.Notice{read, unread}, nil)

	fx.noticeRepo.EXPECT().
		FindReadNoticeIDs(ctx, customerID).
		Return([]uuid.UUID{read.ID}, nil)

	views, err := fx.service.ListNotices(ctx, &customerID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].IsRead)
	assert.False(t, views[1].IsRead)

	// Link markup is split out for rendering.
	require.Len(t, views[1].Segments, 3)
	assert.Equal(t, "여기", views[1].Segments[1].Text)
	assert.Equal(t, "https://example.com", views[1].Segments[1].URL)
}

func TestNoticeService_ListNotices_Guest(t *testing.T) {
	fx := createTestNoticeService(t)

	ctx := context.Background()
	notice := &entity.Notice{ID: uuid.New(), Title: "공지", Content: "내용"}

	fx.noticeRepo.EXPECT().
		FindPublished(ctx).
		Return([]*entity.Notice{notice}, nil)

	views, err := fx.service.ListNotices(ctx, nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsRead)
}

func TestNoticeService_UnreadNoticeCount_StaleMarkersIgnored(t *testing.T) {
	fx := createTestNoticeService(t)

	ctx := context.Background()
	customerID := uuid.New()
	published := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	staleID := uuid.New() // marker for a notice that was unpublished

	fx.noticeRepo.EXPECT().
		FindPublishedIDs(ctx).
		Return(published, nil)

	fx.noticeRepo.EXPECT().
		FindReadNoticeIDs(ctx, customerID).
		Return([]uuid.UUID{published[0], staleID}, nil)

	count, err := fx.service.UnreadNoticeCount(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNoticeService_MarkAllRead(t *testing.T) {
	fx := createTestNoticeService(t)

	ctx := context.Background()
	customerID := uuid.New()
	published := []uuid.UUID{uuid.New(), uuid.New()}

	fx.noticeRepo.EXPECT().
		FindPublishedIDs(ctx).
		Return(published, nil)

	fx.noticeRepo.EXPECT().
		FindReadNoticeIDs(ctx, customerID).
		Return([]uuid.UUID{}, nil)

	fx.noticeRepo.EXPECT().
		MarkRead(ctx, customerID, published[0]).
		Return(nil)

	fx.noticeRepo.EXPECT().
		MarkRead(ctx, customerID, published[1]).
		Return(nil)

	err := fx.service.MarkAllRead(ctx, customerID)
	require.NoError(t, err)
}

func TestNoticeService_MarkAllRead_SwallowsDuplicates(t *testing.T) {
	fx := createTestNoticeService(t)

	ctx := context.Background()
	customerID := uuid.New()
	published := []uuid.UUID{uuid.New(), uuid.New()}

	fx.noticeRepo.EXPECT().
		FindPublishedIDs(ctx).
		Return(published, nil)

	fx.noticeRepo.EXPECT().
		FindReadNoticeIDs(ctx, customerID).
		Return([]uuid.UUID{}, nil)

	// A racing call got to the first one before us.
	fx.noticeRepo.EXPECT().
		MarkRead(ctx, customerID, published[0]).
		Return(repository.ErrDuplicateRead)

	fx.noticeRepo.EXPECT().
		MarkRead(ctx, customerID, published[1]).
		Return(nil)

	err := fx.service.MarkAllRead(ctx, customerID)
	require.NoError(t, err)
}

func TestNoticeService_UnreadBadge(t *testing.T) {
	fx := createTestNoticeService(t)

	ctx := context.Background()
	customerID := uuid.New()
	published := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	fx.noticeRepo.EXPECT().
		FindPublishedIDs(ctx).
		Return(published, nil)

	fx.noticeRepo.EXPECT().
		FindReadNoticeIDs(ctx, customerID).
		Return([]uuid.UUID{published[0]}, nil)

	fx.reportRepo.EXPECT().
		CountUnreadResponses(ctx, customerID).
		Return(1, nil)

	badge, err := fx.service.UnreadBadge(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 2, badge.UnreadNotices)
	assert.Equal(t, 1, badge.UnreadResponses)
	assert.Equal(t, 3, badge.Total)
}
