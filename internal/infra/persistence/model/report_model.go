package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel is the GORM-specific struct for the 'bug_reports' table.
// CustomerID and CustomerPhone are nullable so reports survive account
// deletion and anonymous submissions.
type ReportModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID       *uuid.UUID `gorm:"type:uuid;index"`
	CustomerPhone    *string    `gorm:"type:varchar(20)"`
	CustomerNickname string     `gorm:"type:varchar(100)"`
	Category         string     `gorm:"type:varchar(20);not null"`
	ReportType       string     `gorm:"type:varchar(50)"`
	Title            string     `gorm:"type:text;not null"`
	Description      string     `gorm:"type:text;not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:'received'"`
	AdminResponse    string     `gorm:"type:text"`
	ResponseRead     bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "bug_reports"
}
