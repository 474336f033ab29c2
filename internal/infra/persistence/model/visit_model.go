package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel is the GORM-specific struct for the 'visit_history' table.
// Rows are inserted by the point-of-sale process; the service only updates
// card/review fields and deletes rows.
type VisitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitDate    time.Time `gorm:"not null"`
	SelectedCard *string   `gorm:"type:text"`
	CardReview   *string   `gorm:"type:text"`
	StampsAdded  int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visit_history"
}
