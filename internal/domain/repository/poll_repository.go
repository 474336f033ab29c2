package repository

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
	"stampcard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for poll persistence.
var (
	// ErrPollNotFound is returned when a poll row does not exist.
	ErrPollNotFound = errors.New("poll not found")
	// ErrResponseNotFound is returned when a voter has no response row for
	// a poll.
	ErrResponseNotFound = errors.New("poll response not found")
	// ErrDuplicateResponse is returned when inserting a response violates
	// the (poll, voter) uniqueness constraint. Callers treat it as
	// "already voted", not as a failure.
	ErrDuplicateResponse = errors.New("poll response already exists")
)

// PollRepository defines poll and response database operations.
type PollRepository interface {
	// FindOpenPolls retrieves active polls, newest first.
	FindOpenPolls(ctx context.Context) ([]*entity.Poll, error)

	// FindByID retrieves a single poll row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error)

	// FindResponse retrieves the voter's response for a poll.
	FindResponse(ctx context.Context, pollID, customerID uuid.UUID) (*entity.PollResponse, error)

	// FindResponsesByPoll retrieves all response rows for a poll.
	FindResponsesByPoll(ctx context.Context, pollID uuid.UUID) ([]*entity.PollResponse, error)

	// CreateResponse inserts a new response row. Returns
	// ErrDuplicateResponse when the (poll, voter) pair already has one.
	CreateResponse(ctx context.Context, response *entity.PollResponse) error

	// UpdateResponse replaces the selected options of an existing response
	// in place.
	UpdateResponse(ctx context.Context, id uuid.UUID, selectedOptions []int64, votedAt time.Time) error
}
