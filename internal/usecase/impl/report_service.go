package impl

import (
	"context"
	"strings"
	"unicode/utf8"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reportService struct {
	reportRepo repository.ReportRepository
	config     *config.Config
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Config     *config.Config
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		config:     params.Config,
	}
}

// Submit validates and files a report. Guests file with a nil customer id;
// the phone number and nickname are snapshotted either way so the report
// survives account deletion.
func (s *reportService) Submit(ctx context.Context, customer *entity.Customer, submission *usecase.ReportSubmission) (*entity.Report, error) {
	if submission.Category != entity.ReportCategoryApp && submission.Category != entity.ReportCategoryStore {
		return nil, domainerrors.ErrInvalidReportCategory
	}

	title := strings.TrimSpace(submission.Title)
	if title == "" {
		return nil, domainerrors.ErrReportTitleRequired
	}

	description := strings.TrimSpace(submission.Description)
	if description == "" {
		return nil, domainerrors.ErrReportBodyRequired
	}
	if utf8.RuneCountInString(description) > s.config.Loyalty.ReportMaxLength {
		return nil, domainerrors.ErrReportBodyTooLong
	}

	phone := customer.PhoneNumber
	report := &entity.Report{
		CustomerID:       customer.ID,
		CustomerPhone:    &phone,
		CustomerNickname: customer.Nickname,
		Category:         submission.Category,
		ReportType:       submission.ReportType,
		Title:            title,
		Description:      description,
		Status:           entity.ReportStatusReceived,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	return report, nil
}

// ListMyReports retrieves the customer's reports, newest first.
func (s *reportService) ListMyReports(ctx context.Context, customerID uuid.UUID) ([]*entity.Report, error) {
	reports, err := s.reportRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

// UnreadResponseCount counts answered reports whose response has not been
// read.
func (s *reportService) UnreadResponseCount(ctx context.Context, customerID uuid.UUID) (int, error) {
	count, err := s.reportRepo.CountUnreadResponses(ctx, customerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread report responses")
	}

	return count, nil
}

// MarkResponsesRead marks every answered, unread report as read.
func (s *reportService) MarkResponsesRead(ctx context.Context, customerID uuid.UUID) (int64, error) {
	updated, err := s.reportRepo.MarkResponsesRead(ctx, customerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark report responses read")
	}

	return updated, nil
}
