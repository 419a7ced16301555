package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of flashcards owned by a user.
// The scheduler reads it only to check ownership and report the name.
type Deck struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}
