package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create inserts a new report row.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required report information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

// FindByCustomer retrieves a customer's reports, newest first.
func (repo *reportRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reports by customer")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, nil
}

// CountUnreadResponses counts the customer's reports with an admin response
// that has not been read yet.
func (repo *reportRepository) CountUnreadResponses(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("customer_id = ? AND admin_response <> '' AND response_read = ?", customerID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread report responses")
	}

	return int(count), nil
}

// MarkResponsesRead flips response_read on every answered, unread report of
// the customer. The admin_response filter keeps unanswered reports unread
// until an answer actually exists.
func (repo *reportRepository) MarkResponsesRead(ctx context.Context, customerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("customer_id = ? AND admin_response <> '' AND response_read = ?", customerID, false).
		Update("response_read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark report responses read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toReportDomain converts a GORM ReportModel to a domain Report entity.
func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		CustomerPhone:    data.CustomerPhone,
		CustomerNickname: data.CustomerNickname,
		Category:         entity.ReportCategory(data.Category),
		ReportType:       data.ReportType,
		Title:            data.Title,
		Description:      data.Description,
		Status:           entity.ReportStatus(data.Status),
		AdminResponse:    data.AdminResponse,
		ResponseRead:     data.ResponseRead,
		CreatedAt:        data.CreatedAt,
	}
}

// fromReportDomain converts a domain Report entity to a GORM ReportModel for
// persistence.
func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		CustomerPhone:    data.CustomerPhone,
		CustomerNickname: data.CustomerNickname,
		Category:         string(data.Category),
		ReportType:       data.ReportType,
		Title:            data.Title,
		Description:      data.Description,
		Status:           string(data.Status),
		AdminResponse:    data.AdminResponse,
		ResponseRead:     data.ResponseRead,
	}
}
