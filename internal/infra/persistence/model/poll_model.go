package model

import (
	"time"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// PollModel is the GORM-specific struct for the 'votes' table. Options are
// stored as a JSONB array of {id, text} objects.
type PollModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string              `gorm:"type:text;not null"`
	Description   string              `gorm:"type:text"`
	Options       []entity.PollOption `gorm:"type:jsonb;serializer:json;not null"`
	AllowMultiple bool                `gorm:"not null;default:false"`
	MaxSelections int                 `gorm:"not null;default:1"`
	IsAnonymous   bool                `gorm:"not null;default:false"`
	IsActive      bool                `gorm:"not null;default:true;index"`
	EndsAt        *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PollModel) TableName() string {
	return "votes"
}

// PollResponseModel is the GORM-specific struct for the 'vote_responses'
// table. The (vote_id, customer_id) pair is the system's only true
// uniqueness constraint.
type PollResponseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VoteID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vote_responses_vote_customer"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vote_responses_vote_customer"`
	SelectedOptions []int64   `gorm:"type:jsonb;serializer:json;not null"`
	VotedAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PollResponseModel) TableName() string {
	return "vote_responses"
}
