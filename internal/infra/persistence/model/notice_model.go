package model

import (
	"time"

	"github.com/google/uuid"
)

// NoticeModel is the GORM-specific struct for the 'notices' table.
type NoticeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:text;not null"`
	IsPinned    bool      `gorm:"not null;default:false"`
	IsPublished bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoticeModel) TableName() string {
	return "notices"
}

// NoticeReadModel is the GORM-specific struct for the 'notice_reads' table.
// One row per (customer, notice) pair, enforced by a unique index.
type NoticeReadModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notice_reads_customer_notice"`
	NoticeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notice_reads_customer_notice"`
	ReadAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NoticeReadModel) TableName() string {
	return "notice_reads"
}
