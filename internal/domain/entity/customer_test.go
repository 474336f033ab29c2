package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGuest(t *testing.T) {
	guest := NewGuest("010-9999-4321")

	assert.True(t, guest.IsGuest)
	assert.Nil(t, guest.ID)
	assert.Equal(t, "010-9999-4321", guest.PhoneNumber)
	assert.Equal(t, "4321", guest.Nickname)
	assert.Equal(t, 0, guest.CurrentStamps)
	assert.Equal(t, 0, guest.Coupons)
}

func TestNewGuest_ShortNumber(t *testing.T) {
	guest := NewGuest("123")

	assert.Equal(t, "123", guest.Nickname)
}

func TestCardByName(t *testing.T) {
	card, ok := CardByName("The Sun")
	assert.True(t, ok)
	assert.Equal(t, 7, card.ID)
	assert.Equal(t, "성공과 기쁨", card.Meaning)

	_, ok = CardByName("The Tower")
	assert.False(t, ok)
}
