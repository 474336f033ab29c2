package impl

import (
	"context"
	"testing"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// voteServiceFixtures holds all test dependencies for vote service tests.
type voteServiceFixtures struct {
	service  usecase.VoteUsecase
	pollRepo *mockRepo.MockPollRepository
}

func createTestVoteService(t *testing.T) voteServiceFixtures {
	pollRepo := mockRepo.NewMockPollRepository(t)

	service := NewVoteService(VoteServiceParams{
		PollRepo: pollRepo,
	})

	return voteServiceFixtures{
		service:  service,
		pollRepo: pollRepo,
	}
}

func testPoll(allowMultiple bool, maxSelections int) *entity.Poll {
	return &entity.Poll{
		ID:    uuid.New(),
		Title: "다음 신메뉴는?",
		Options: []entity.PollOption{
			{ID: 1, Text: "딸기 라떼"},
			{ID: 2, Text: "흑임자 케이크"},
			{ID: 3, Text: "말차 스콘"},
		},
		AllowMultiple: allowMultiple,
		MaxSelections: maxSelections,
		IsActive:      true,
	}
}

func TestVoteService_ListOpenPolls_FiltersClosedByTime(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	open := &entity.Poll{ID: uuid.New(), IsActive: true, EndsAt: &future}
	ended := &entity.Poll{ID: uuid.New(), IsActive: true, EndsAt: &past}
	noDeadline := &entity.Poll{ID: uuid.New(), IsActive: true}

	fx.pollRepo.EXPECT().
		FindOpenPolls(ctx).
		Return([]*entity.Poll{open, ended, noDeadline}, nil)

	polls, err := fx.service.ListOpenPolls(ctx)
	require.NoError(t, err)
	require.Len(t, polls, 2)
	assert.Equal(t, open.ID, polls[0].ID)
	assert.Equal(t, noDeadline.ID, polls[1].ID)
}

func TestVoteService_LoadMyResponse_NotVoted(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	pollID := uuid.New()
	customerID := uuid.New()

	fx.pollRepo.EXPECT().
		FindResponse(ctx, pollID, customerID).
		Return(nil, repository.ErrResponseNotFound)

	response, err := fx.service.LoadMyResponse(ctx, pollID, customerID)
	require.NoError(t, err)
	assert.Nil(t, response)
}

func TestVoteService_Tally(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(true, 2)
	voterA := uuid.New()
	voterB := uuid.New()

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	fx.pollRepo.EXPECT().
		FindResponsesByPoll(ctx, poll.ID).
		Return([]*entity.PollResponse{
			{CustomerID: voterA, SelectedOptions: []int64{1, 2}},
			{CustomerID: voterB, SelectedOptions: []int64{1, 99}}, // 99 no longer exists
		}, nil)

	tally, err := fx.service.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, tally.TotalRespondents)
	assert.Equal(t, 2, tally.Counts[1])
	assert.Equal(t, 1, tally.Counts[2])
	assert.Equal(t, 0, tally.Counts[3])
	assert.NotContains(t, tally.Counts, int64(99))
	assert.Equal(t, 100, tally.Percentage(1))
	assert.Equal(t, 50, tally.Percentage(2))
}

func TestVoteService_Tally_NoResponses(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(false, 0)

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	fx.pollRepo.EXPECT().
		FindResponsesByPoll(ctx, poll.ID).
		Return([]*entity.PollResponse{}, nil)

	tally, err := fx.service.Tally(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, tally.TotalRespondents)
	assert.Equal(t, 0, tally.Percentage(1))
}

func TestVoteService_ToggleOption_SingleChoice(t *testing.T) {
	fx := createTestVoteService(t)

	poll := testPoll(false, 0)

	// Selecting replaces whatever was selected before.
	selection, err := fx.service.ToggleOption(poll, []int64{1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, selection.OptionIDs)

	// Selecting the current option again deselects it.
	selection, err = fx.service.ToggleOption(poll, []int64{2}, 2)
	require.NoError(t, err)
	assert.Empty(t, selection.OptionIDs)
}

func TestVoteService_ToggleOption_MultiChoice(t *testing.T) {
	fx := createTestVoteService(t)

	poll := testPoll(true, 2)

	selection, err := fx.service.ToggleOption(poll, []int64{1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, selection.OptionIDs)
	assert.True(t, selection.AtCapacity)

	// Adding past the cap keeps the selection and flags it.
	selection, err = fx.service.ToggleOption(poll, []int64{1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, selection.OptionIDs)
	assert.True(t, selection.AtCapacity)

	// Removing always works.
	selection, err = fx.service.ToggleOption(poll, []int64{1, 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, selection.OptionIDs)
	assert.False(t, selection.AtCapacity)
}

func TestVoteService_ToggleOption_UnknownOption(t *testing.T) {
	fx := createTestVoteService(t)

	poll := testPoll(true, 2)

	selection, err := fx.service.ToggleOption(poll, []int64{1}, 99)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownOption)
	assert.Nil(t, selection)
}

func TestVoteService_Submit_FirstVote(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(false, 0)
	customerID := uuid.New()

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	fx.pollRepo.EXPECT().
		FindResponse(ctx, poll.ID, customerID).
		Return(nil, repository.ErrResponseNotFound)

	fx.pollRepo.EXPECT().
		CreateResponse(ctx, mock.AnythingOfType("*entity.PollResponse")).
		Return(nil)

	response, err := fx.service.Submit(ctx, poll.ID, customerID, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, poll.ID, response.PollID)
	assert.Equal(t, customerID, response.CustomerID)
	assert.Equal(t, []int64{2}, response.SelectedOptions)
}

func TestVoteService_Submit_RevisesExisting(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(false, 0)
	customerID := uuid.New()
	existing := &entity.PollResponse{
		ID:              uuid.New(),
		PollID:          poll.ID,
		CustomerID:      customerID,
		SelectedOptions: []int64{1},
	}

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	fx.pollRepo.EXPECT().
		FindResponse(ctx, poll.ID, customerID).
		Return(existing, nil)

	fx.pollRepo.EXPECT().
		UpdateResponse(ctx, existing.ID, []int64{3}, mock.AnythingOfType("time.Time")).
		Return(nil)

	response, err := fx.service.Submit(ctx, poll.ID, customerID, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, response.ID)
	assert.Equal(t, []int64{3}, response.SelectedOptions)
}

func TestVoteService_Submit_DuplicateRaceFallsBackToRevision(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(false, 0)
	customerID := uuid.New()
	winner := &entity.PollResponse{
		ID:              uuid.New(),
		PollID:          poll.ID,
		CustomerID:      customerID,
		SelectedOptions: []int64{1},
	}

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	fx.pollRepo.EXPECT().
		FindResponse(ctx, poll.ID, customerID).
		Return(nil, repository.ErrResponseNotFound).Once()

	fx.pollRepo.EXPECT().
		CreateResponse(ctx, mock.AnythingOfType("*entity.PollResponse")).
		Return(repository.ErrDuplicateResponse)

	fx.pollRepo.EXPECT().
		FindResponse(ctx, poll.ID, customerID).
		Return(winner, nil).Once()

	fx.pollRepo.EXPECT().
		UpdateResponse(ctx, winner.ID, []int64{2}, mock.AnythingOfType("time.Time")).
		Return(nil)

	response, err := fx.service.Submit(ctx, poll.ID, customerID, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, response.ID)
	assert.Equal(t, []int64{2}, response.SelectedOptions)
}

func TestVoteService_Submit_PollClosed(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(false, 0)
	poll.IsActive = false

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	response, err := fx.service.Submit(ctx, poll.ID, uuid.New(), []int64{1})
	assert.ErrorIs(t, err, domainerrors.ErrPollClosed)
	assert.Nil(t, response)
}

func TestVoteService_Submit_SelectionValidation(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	single := testPoll(false, 0)
	multi := testPoll(true, 2)

	tests := []struct {
		name      string
		poll      *entity.Poll
		selection []int64
		wantErr   error
	}{
		{"empty selection", single, []int64{}, domainerrors.ErrEmptySelection},
		{"unknown option", single, []int64{99}, domainerrors.ErrUnknownOption},
		{"multiple on single-choice", single, []int64{1, 2}, domainerrors.ErrSingleChoiceOnly},
		{"over the cap", multi, []int64{1, 2, 3}, domainerrors.ErrTooManySelections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.pollRepo.EXPECT().
				FindByID(ctx, tt.poll.ID).
				Return(tt.poll, nil).Once()

			response, err := fx.service.Submit(ctx, tt.poll.ID, uuid.New(), tt.selection)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, response)
		})
	}
}

func TestVoteService_Submit_DedupesSelection(t *testing.T) {
	fx := createTestVoteService(t)

	ctx := context.Background()
	poll := testPoll(true, 2)
	customerID := uuid.New()

	fx.pollRepo.EXPECT().
		FindByID(ctx, poll.ID).
		Return(poll, nil)

	fx.pollRepo.EXPECT().
		FindResponse(ctx, poll.ID, customerID).
		Return(nil, repository.ErrResponseNotFound)

	fx.pollRepo.EXPECT().
		CreateResponse(ctx, mock.AnythingOfType("*entity.PollResponse")).
		Run(func(_ context.Context, response *entity.PollResponse) {
			assert.Equal(t, []int64{1, 2}, response.SelectedOptions)
		}).
		Return(nil)

	// Repeated ids collapse before the cap check, so this is two options.
	_, err := fx.service.Submit(ctx, poll.ID, customerID, []int64{1, 1, 2, 2})
	require.NoError(t, err)
}
