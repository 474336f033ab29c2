package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// Selection is an in-progress set of option ids being edited before
// submission. AtCapacity is advisory; it never blocks anything by itself.
type Selection struct {
	OptionIDs  []int64 `json:"option_ids"`
	AtCapacity bool    `json:"at_capacity"`
}

// VoteUsecase defines the interface for poll use cases
type VoteUsecase interface {
	// ListOpenPolls retrieves the polls currently accepting responses,
	// newest first.
	ListOpenPolls(ctx context.Context) ([]*entity.Poll, error)

	// LoadMyResponse retrieves the customer's existing response for a
	// poll, or nil when they have not voted.
	LoadMyResponse(ctx context.Context, pollID, customerID uuid.UUID) (*entity.PollResponse, error)

	// Tally computes per-option counts and the distinct respondent total
	// for a poll.
	Tally(ctx context.Context, pollID uuid.UUID) (*entity.PollTally, error)

	// ToggleOption flips an option in the current selection according to
	// the poll's choice mode. It touches no storage.
	ToggleOption(poll *entity.Poll, current []int64, optionID int64) (*Selection, error)

	// Submit validates the selection against the poll and stores it, as an
	// insert for a first vote or an in-place update for a revision.
	Submit(ctx context.Context, pollID, customerID uuid.UUID, selectedOptions []int64) (*entity.PollResponse, error)
}
