package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportCategory distinguishes app issues from store complaints.
type ReportCategory string

const (
	ReportCategoryApp   ReportCategory = "app"
	ReportCategoryStore ReportCategory = "store"
)

// ReportStatus is the back-office processing state of a report.
type ReportStatus string

const (
	ReportStatusReceived   ReportStatus = "received"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
	ReportStatusHeld       ReportStatus = "held"
)

// Report is a bug or complaint filed by a customer. Anonymous reports carry
// a nil CustomerID. AdminResponse is written out of band; ResponseRead can
// only flip once a response exists.
type Report struct {
	ID               uuid.UUID      `json:"id"`
	CustomerID       *uuid.UUID     `json:"customer_id"`
	CustomerPhone    *string        `json:"customer_phone"`
	CustomerNickname string         `json:"customer_nickname"`
	Category         ReportCategory `json:"category"`
	ReportType       string         `json:"report_type"` // Free-form subtype, e.g. "어플 버그".
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Status           ReportStatus   `json:"status"`
	AdminResponse    string         `json:"admin_response"`
	ResponseRead     bool           `json:"response_read"`
	CreatedAt        time.Time      `json:"created_at"`
}

// HasUnreadResponse reports whether the report feeds the unread badge.
func (r *Report) HasUnreadResponse() bool {
	return r.AdminResponse != "" && !r.ResponseRead
}
