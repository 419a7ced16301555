package study

import (
	"github.com/google/uuid"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// maxSessionLimit bounds the limit a caller may request regardless of config.
const maxSessionLimit = 50

// StartSessionInput holds the parameters for starting a study session.
type StartSessionInput struct {
	UserID uuid.UUID
	DeckID uuid.UUID
	Limit  int // 0 means the configured default
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxSessionLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds the parameters for reviewing a card inside a session.
type ReviewCardInput struct {
	SessionID  string
	CardID     uuid.UUID
	Difficulty domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == "" {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be 1 (easy), 2 (normal) or 3 (hard)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
