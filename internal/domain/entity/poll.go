package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PollOption is one selectable option of a poll. Option ids are stable
// within the poll and referenced by responses.
type PollOption struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Poll represents a customer poll.
type Poll struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Options       []PollOption `json:"options"`
	AllowMultiple bool         `json:"allow_multiple"`
	MaxSelections int          `json:"max_selections"` // Meaningful only when AllowMultiple.
	IsAnonymous   bool         `json:"is_anonymous"`
	IsActive      bool         `json:"is_active"`
	EndsAt        *time.Time   `json:"ends_at"` // nil = no close time.
	CreatedAt     time.Time    `json:"created_at"`
}

// IsOpen reports whether the poll still accepts submissions.
func (p *Poll) IsOpen(now time.Time) bool {
	if !p.IsActive {
		return false
	}

	return p.EndsAt == nil || p.EndsAt.After(now)
}

// PollResponse is the single response row per (poll, voter).
type PollResponse struct {
	ID              uuid.UUID `json:"id"`
	PollID          uuid.UUID `json:"vote_id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	SelectedOptions []int64   `json:"selected_options"`
	VotedAt         time.Time `json:"voted_at"`
}

// PollTally is the live result of a poll. Each response contributes once to
// TotalRespondents and once per selected option to Counts.
type PollTally struct {
	Counts           map[int64]int `json:"counts"`
	TotalRespondents int           `json:"total_respondents"`
}

// Percentage returns the rounded share of respondents that selected the
// option; 0 when nobody has responded. Multi-select polls can therefore sum
// past 100.
func (t *PollTally) Percentage(optionID int64) int {
	if t.TotalRespondents == 0 {
		return 0
	}

	return int(math.Round(float64(t.Counts[optionID]) * 100 / float64(t.TotalRespondents)))
}
