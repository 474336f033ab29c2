package repository

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/errors"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when a report row does not exist.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines bug/feedback report database operations.
type ReportRepository interface {
	// Create inserts a new report row.
	Create(ctx context.Context, report *entity.Report) error

	// FindByCustomer retrieves a customer's reports, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Report, error)

	// CountUnreadResponses counts the customer's reports with a non-empty
	// admin response that has not been read.
	CountUnreadResponses(ctx context.Context, customerID uuid.UUID) (int, error)

	// MarkResponsesRead flips response_read on every answered, unread
	// report of the customer. The update filter requires a non-empty admin
	// response, so unread can never flip before an answer exists. Returns
	// the number of rows updated.
	MarkResponsesRead(ctx context.Context, customerID uuid.UUID) (int64, error)
}
