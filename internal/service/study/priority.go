package study

import (
	"time"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// CardPriority maps a card's scheduling state to an urgency score; higher
// scores are studied first. Pure function, deterministic for a fixed now.
//
// The score is the sum of four contributions:
//   - review-state base: dominant term, see basePriority
//   - difficulty bonus: harder cards get a boost
//   - under-practice bonus: vanishes once a card has 5 reviews
//   - staleness bonus: grows with time since the last review, capped
func CardPriority(card *domain.Flashcard, now time.Time) float64 {
	score := basePriority(card, now)
	score += float64(card.Difficulty-domain.DifficultyEasy) * 50
	score += max(0, 100-float64(card.ReviewCount)*20)
	score += stalenessBonus(card, now)
	return score
}

// basePriority scores the card's position relative to its next review date.
// Never-scheduled cards outrank everything: 1000 beats the overdue cap of 800.
func basePriority(card *domain.Flashcard, now time.Time) float64 {
	if card.NextReview == nil {
		return 1000
	}

	if card.NextReview.Before(now) {
		daysOverdue := now.Sub(*card.NextReview).Hours() / 24
		return min(800, 400+daysOverdue*10)
	}

	daysUntilDue := card.NextReview.Sub(now).Hours() / 24
	switch {
	case daysUntilDue <= 1:
		return 300
	case daysUntilDue <= 3:
		return 200
	case daysUntilDue <= 7:
		return 100
	default:
		return 50
	}
}

func stalenessBonus(card *domain.Flashcard, now time.Time) float64 {
	if card.LastReviewed == nil {
		return 50
	}
	days := now.Sub(*card.LastReviewed).Hours() / 24
	return min(50, days*2)
}
