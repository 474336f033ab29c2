package impl

import (
	"context"
	"slices"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type voteService struct {
	pollRepo repository.PollRepository
}

// VoteServiceParams holds dependencies for VoteService, injected by Fx.
type VoteServiceParams struct {
	fx.In

	PollRepo repository.PollRepository
}

// NewVoteService creates a new vote service instance
func NewVoteService(params VoteServiceParams) usecase.VoteUsecase {
	return &voteService{
		pollRepo: params.PollRepo,
	}
}

// ListOpenPolls retrieves the polls currently accepting responses.
func (s *voteService) ListOpenPolls(ctx context.Context) ([]*entity.Poll, error) {
	polls, err := s.pollRepo.FindOpenPolls(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open polls")
	}

	// The store filter only covers is_active; the close time is checked
	// here so a poll drops out the moment it passes.
	now := time.Now()
	open := make([]*entity.Poll, 0, len(polls))
	for _, poll := range polls {
		if poll.IsOpen(now) {
			open = append(open, poll)
		}
	}

	return open, nil
}

// LoadMyResponse retrieves the customer's existing response for a poll, or
// nil when they have not voted.
func (s *voteService) LoadMyResponse(ctx context.Context, pollID, customerID uuid.UUID) (*entity.PollResponse, error) {
	response, err := s.pollRepo.FindResponse(ctx, pollID, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrResponseNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load poll response")
	}

	return response, nil
}

// Tally computes per-option counts and the distinct respondent total. Every
// response row counts once toward the total no matter how many options it
// selected.
func (s *voteService) Tally(ctx context.Context, pollID uuid.UUID) (*entity.PollTally, error) {
	poll, err := s.findPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	responses, err := s.pollRepo.FindResponsesByPoll(ctx, pollID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load poll responses")
	}

	counts := make(map[int64]int, len(poll.Options))
	for _, option := range poll.Options {
		counts[option.ID] = 0
	}

	respondents := make(map[uuid.UUID]struct{}, len(responses))
	for _, response := range responses {
		respondents[response.CustomerID] = struct{}{}
		for _, optionID := range response.SelectedOptions {
			// Selections referencing options the poll no longer has are skipped.
			if _, ok := counts[optionID]; ok {
				counts[optionID]++
			}
		}
	}

	return &entity.PollTally{
		Counts:           counts,
		TotalRespondents: len(respondents),
	}, nil
}

// ToggleOption flips an option in the current selection. Single-choice
// polls replace the selection; multi-choice polls add and remove, refusing
// additions past the cap with an advisory flag instead of an error.
func (s *voteService) ToggleOption(poll *entity.Poll, current []int64, optionID int64) (*usecase.Selection, error) {
	if !pollHasOption(poll, optionID) {
		return nil, domainerrors.ErrUnknownOption
	}

	if !poll.AllowMultiple {
		if slices.Contains(current, optionID) {
			return &usecase.Selection{OptionIDs: []int64{}}, nil
		}

		return &usecase.Selection{OptionIDs: []int64{optionID}}, nil
	}

	if idx := slices.Index(current, optionID); idx >= 0 {
		next := slices.Delete(slices.Clone(current), idx, idx+1)

		return &usecase.Selection{OptionIDs: next}, nil
	}

	if poll.MaxSelections > 0 && len(current) >= poll.MaxSelections {
		return &usecase.Selection{
			OptionIDs:  slices.Clone(current),
			AtCapacity: true,
		}, nil
	}

	next := append(slices.Clone(current), optionID)

	return &usecase.Selection{
		OptionIDs:  next,
		AtCapacity: poll.MaxSelections > 0 && len(next) >= poll.MaxSelections,
	}, nil
}

// Submit validates the selection and stores it, revising in place when the
// customer already voted.
func (s *voteService) Submit(ctx context.Context, pollID, customerID uuid.UUID, selectedOptions []int64) (*entity.PollResponse, error) {
	poll, err := s.findPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if !poll.IsOpen(time.Now()) {
		return nil, domainerrors.ErrPollClosed
	}

	selection := dedupeOptions(selectedOptions)
	if err := validateSelection(poll, selection); err != nil {
		return nil, err
	}

	existing, err := s.pollRepo.FindResponse(ctx, pollID, customerID)
	if err != nil && !errors.Is(err, repository.ErrResponseNotFound) {
		return nil, errors.Wrap(err, "failed to load existing response")
	}

	if existing != nil {
		return s.reviseResponse(ctx, existing, selection)
	}

	response := &entity.PollResponse{
		PollID:          pollID,
		CustomerID:      customerID,
		SelectedOptions: selection,
		VotedAt:         time.Now(),
	}
	if err := s.pollRepo.CreateResponse(ctx, response); err != nil {
		// Lost a first-vote race; fall back to revising the winner's row.
		if errors.Is(err, repository.ErrDuplicateResponse) {
			existing, err := s.pollRepo.FindResponse(ctx, pollID, customerID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load racing response")
			}

			return s.reviseResponse(ctx, existing, selection)
		}
		if errors.Is(err, repository.ErrPollNotFound) {
			return nil, domainerrors.ErrPollNotFound
		}

		return nil, errors.Wrap(err, "failed to create poll response")
	}

	return response, nil
}

// reviseResponse replaces an existing response's selection in place.
func (s *voteService) reviseResponse(ctx context.Context, existing *entity.PollResponse, selection []int64) (*entity.PollResponse, error) {
	votedAt := time.Now()
	if err := s.pollRepo.UpdateResponse(ctx, existing.ID, selection, votedAt); err != nil {
		return nil, errors.Wrap(err, "failed to update poll response")
	}

	existing.SelectedOptions = selection
	existing.VotedAt = votedAt

	return existing, nil
}

func (s *voteService) findPoll(ctx context.Context, pollID uuid.UUID) (*entity.Poll, error) {
	poll, err := s.pollRepo.FindByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, repository.ErrPollNotFound) {
			return nil, domainerrors.ErrPollNotFound
		}

		return nil, errors.Wrap(err, "failed to load poll")
	}

	return poll, nil
}

func validateSelection(poll *entity.Poll, selection []int64) error {
	if len(selection) == 0 {
		return domainerrors.ErrEmptySelection
	}

	for _, optionID := range selection {
		if !pollHasOption(poll, optionID) {
			return domainerrors.ErrUnknownOption
		}
	}

	if !poll.AllowMultiple && len(selection) > 1 {
		return domainerrors.ErrSingleChoiceOnly
	}

	if poll.AllowMultiple && poll.MaxSelections > 0 && len(selection) > poll.MaxSelections {
		return domainerrors.ErrTooManySelections
	}

	return nil
}

func pollHasOption(poll *entity.Poll, optionID int64) bool {
	for _, option := range poll.Options {
		if option.ID == optionID {
			return true
		}
	}

	return false
}

func dedupeOptions(optionIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(optionIDs))
	out := make([]int64, 0, len(optionIDs))
	for _, id := range optionIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
