package study

import (
	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// displayCard strips a flashcard down to the fields a client should see.
func displayCard(card *domain.Flashcard) *CardView {
	if card == nil {
		return nil
	}
	return &CardView{
		ID:          card.ID,
		Front:       card.Front,
		Back:        card.Back,
		Difficulty:  card.Difficulty,
		ReviewCount: card.ReviewCount,
	}
}
