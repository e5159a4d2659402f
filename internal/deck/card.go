package deck

import (
	"time"

	"github.com/google/uuid"

	"github.com/sidram/memoriz/internal/srs"
)

// Deck groups cards under a name.
type Deck struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Card is a single front/back flashcard together with its scheduling record.
type Card struct {
	ID     string
	DeckID string

	Front string
	Back  string
	Note  string

	// BCP-47 language tags for text-to-speech, empty if speech is not
	// wanted for that side.
	FrontLang string
	BackLang  string

	Scheduling srs.State
	CreatedAt  time.Time
}

// NewDeck creates a deck with a fresh ID.
func NewDeck(name string, now time.Time) Deck {
	return Deck{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
	}
}

// NewCard creates a card in the given deck, due immediately.
func NewCard(deckID, front, back string, now time.Time) Card {
	return Card{
		ID:         uuid.New().String(),
		DeckID:     deckID,
		Front:      front,
		Back:       back,
		Scheduling: srs.NewState(now),
		CreatedAt:  now,
	}
}

// Summary is a deck with its aggregate card counts, for list views.
type Summary struct {
	Deck      Deck
	CardCount int
	DueCount  int
}
