package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoll_IsOpen(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Poll{IsActive: true}).IsOpen(now))
	assert.True(t, (&Poll{IsActive: true, EndsAt: &future}).IsOpen(now))
	assert.False(t, (&Poll{IsActive: true, EndsAt: &past}).IsOpen(now))
	assert.False(t, (&Poll{IsActive: false}).IsOpen(now))
	assert.False(t, (&Poll{IsActive: false, EndsAt: &future}).IsOpen(now))
}

func TestPollTally_Percentage(t *testing.T) {
	tally := &PollTally{
		Counts:           map[int64]int{1: 2, 2: 1, 3: 0},
		TotalRespondents: 3,
	}

	assert.Equal(t, 67, tally.Percentage(1))
	assert.Equal(t, 33, tally.Percentage(2))
	assert.Equal(t, 0, tally.Percentage(3))
	assert.Equal(t, 0, tally.Percentage(99))
}

func TestPollTally_Percentage_NoRespondents(t *testing.T) {
	tally := &PollTally{Counts: map[int64]int{}}

	assert.Equal(t, 0, tally.Percentage(1))
}

func TestPollTally_Percentage_MultiSelectSumsPast100(t *testing.T) {
	// Two respondents who both picked both options.
	tally := &PollTally{
		Counts:           map[int64]int{1: 2, 2: 2},
		TotalRespondents: 2,
	}

	assert.Equal(t, 100, tally.Percentage(1))
	assert.Equal(t, 100, tally.Percentage(2))
}
