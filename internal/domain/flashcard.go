package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the user-facing difficulty rating of a flashcard.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyNormal Difficulty = 2
	DifficultyHard   Difficulty = 3
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// Flashcard is a front/back question-answer pair with scheduling metadata.
// Front and Back are opaque to the scheduler.
type Flashcard struct {
	ID           uuid.UUID
	DeckID       uuid.UUID
	Front        string
	Back         string
	Difficulty   Difficulty
	ReviewCount  int
	LastReviewed *time.Time
	NextReview   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDue returns true if the card needs review at the given time.
// Cards without a scheduled next review are always due.
func (c *Flashcard) IsDue(now time.Time) bool {
	if c.NextReview == nil {
		return true
	}
	return !c.NextReview.After(now)
}
