package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit represents one store visit. Rows are created at the point of sale;
// the customer only ever attaches a card and a short review afterwards.
type Visit struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	VisitDate    time.Time `json:"visit_date"`
	SelectedCard *string   `json:"selected_card"` // Card name from the catalog; nil until chosen.
	CardReview   *string   `json:"card_review"`   // Free text, at most the configured review length.
	StampsAdded  int       `json:"stamps_added"`  // Stamps granted at this visit, 0 when none.
	CreatedAt    time.Time `json:"created_at"`
}

// Card is one entry of the fixed selection catalog shown after a visit.
type Card struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Meaning string `json:"meaning"`
}

// Cards is the tarot catalog a visit card is chosen from.
var Cards = []Card{
	{ID: 1, Emoji: "🃏", Name: "The Fool", Meaning: "새로운 시작"},
	{ID: 2, Emoji: "🎩", Name: "The Magician", Meaning: "창조와 의지"},
	{ID: 3, Emoji: "👸", Name: "The Empress", Meaning: "풍요와 사랑"},
	{ID: 4, Emoji: "🤴", Name: "The Emperor", Meaning: "권위와 안정"},
	{ID: 5, Emoji: "⚖️", Name: "Justice", Meaning: "정의와 균형"},
	{ID: 6, Emoji: "🌙", Name: "The Moon", Meaning: "직관과 꿈"},
	{ID: 7, Emoji: "☀️", Name: "The Sun", Meaning: "성공과 기쁨"},
	{ID: 8, Emoji: "⭐", Name: "The Star", Meaning: "희망과 영감"},
	{ID: 9, Emoji: "🎭", Name: "The Lovers", Meaning: "선택과 사랑"},
	{ID: 10, Emoji: "🔱", Name: "The Devil", Meaning: "유혹과 집착"},
}

// CardByName looks a card up in the catalog.
func CardByName(name string) (Card, bool) {
	for _, card := range Cards {
		if card.Name == name {
			return card, true
		}
	}

	return Card{}, false
}
