package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportSubmission is the customer-facing input for filing a report.
type ReportSubmission struct {
	Category    entity.ReportCategory `json:"category"`
	ReportType  string                `json:"report_type"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
}

// ReportUsecase defines the interface for bug/feedback report use cases
type ReportUsecase interface {
	// Submit validates and files a report on behalf of the customer.
	Submit(ctx context.Context, customer *entity.Customer, submission *ReportSubmission) (*entity.Report, error)

	// ListMyReports retrieves the customer's reports, newest first.
	ListMyReports(ctx context.Context, customerID uuid.UUID) ([]*entity.Report, error)

	// UnreadResponseCount counts the customer's answered reports whose
	// response has not been read.
	UnreadResponseCount(ctx context.Context, customerID uuid.UUID) (int, error)

	// MarkResponsesRead marks every answered, unread report of the
	// customer as read and returns how many flipped.
	MarkResponsesRead(ctx context.Context, customerID uuid.UUID) (int64, error)
}
