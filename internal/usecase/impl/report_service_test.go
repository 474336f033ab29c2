package impl

import (
	"context"
	"strings"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	cfg := &config.Config{
		Loyalty: &config.LoyaltyConfig{
			ReportMaxLength: 500,
		},
	}

	service := NewReportService(ReportServiceParams{
		ReportRepo: reportRepo,
		Config:     cfg,
	})

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
	}
}

func TestReportService_Submit_RegisteredCustomer(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	customerID := uuid.New()
	customer := &entity.Customer{
		ID:          &customerID,
		PhoneNumber: "010-1234-5678",
		Nickname:    "단골손님",
	}

	fx.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	report, err := fx.service.Submit(ctx, customer, &usecase.ReportSubmission{
		Category:    entity.ReportCategoryApp,
		ReportType:  "어플 버그",
		Title:       "  쿠폰 화면 오류  ",
		Description: "쿠폰 목록이 비어 보입니다",
	})
	require.NoError(t, err)
	assert.Equal(t, &customerID, report.CustomerID)
	assert.Equal(t, "010-1234-5678", *report.CustomerPhone)
	assert.Equal(t, "단골손님", report.CustomerNickname)
	assert.Equal(t, "쿠폰 화면 오류", report.Title)
	assert.Equal(t, entity.ReportStatusReceived, report.Status)
}

func TestReportService_Submit_Guest(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	guest := entity.NewGuest("010-9999-4321")

	fx.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	report, err := fx.service.Submit(ctx, guest, &usecase.ReportSubmission{
		Category:    entity.ReportCategoryStore,
		Title:       "매장 건의",
		Description: "좌석이 부족해요",
	})
	require.NoError(t, err)
	assert.Nil(t, report.CustomerID)
	assert.Equal(t, "010-9999-4321", *report.CustomerPhone)
	assert.Equal(t, "4321", report.CustomerNickname)
}

func TestReportService_Submit_Validation(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	customer := entity.NewGuest("010-9999-4321")

	tests := []struct {
		name       string
		submission *usecase.ReportSubmission
		wantErr    error
	}{
		{
			"bad category",
			&usecase.ReportSubmission{Category: "etc", Title: "t", Description: "d"},
			domainerrors.ErrInvalidReportCategory,
		},
		{
			"blank title",
			&usecase.ReportSubmission{Category: entity.ReportCategoryApp, Title: "   ", Description: "d"},
			domainerrors.ErrReportTitleRequired,
		},
		{
			"blank description",
			&usecase.ReportSubmission{Category: entity.ReportCategoryApp, Title: "t", Description: "   "},
			domainerrors.ErrReportBodyRequired,
		},
		{
			"description too long",
			&usecase.ReportSubmission{
				Category:    entity.ReportCategoryApp,
				Title:       "t",
				Description: strings.Repeat("가", 501),
			},
			domainerrors.ErrReportBodyTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := fx.service.Submit(ctx, customer, tt.submission)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, report)
		})
	}
}

func TestReportService_Submit_DescriptionAtLimit(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	customer := entity.NewGuest("010-9999-4321")

	fx.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	_, err := fx.service.Submit(ctx, customer, &usecase.ReportSubmission{
		Category:    entity.ReportCategoryApp,
		Title:       "t",
		Description: strings.Repeat("가", 500),
	})
	require.NoError(t, err)
}

func TestReportService_ListMyReports(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	customerID := uuid.New()
	reports := []*entity.Report{
		{ID: uuid.New(), Title: "첫 번째"},
		{ID: uuid.New(), Title: "두 번째"},
	}

	fx.reportRepo.EXPECT().
		FindByCustomer(ctx, customerID).
		Return(reports, nil)

	got, err := fx.service.ListMyReports(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, reports, got)
}

func TestReportService_UnreadResponseCount(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.reportRepo.EXPECT().
		CountUnreadResponses(ctx, customerID).
		Return(2, nil)

	count, err := fx.service.UnreadResponseCount(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReportService_MarkResponsesRead(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.reportRepo.EXPECT().
		MarkResponsesRead(ctx, customerID).
		Return(int64(2), nil)

	updated, err := fx.service.MarkResponsesRead(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}
