package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	GetByID(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error)
	GetByDeckID(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error)
	UpdateSchedule(ctx context.Context, cardID uuid.UUID, update ScheduleUpdate) (*domain.Flashcard, error)
}

type sessionStore interface {
	Get(id string) (*Session, bool)
	Put(sess *Session)
	Delete(id string)
	Sweep(now time.Time) int
	All() []*Session
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study session business logic: it owns the live
// session table and orchestrates the queue, the scheduler and the external
// deck/card stores.
type Service struct {
	decks    deckRepo
	cards    cardRepo
	sessions sessionStore
	clock    clockwork.Clock
	log      *slog.Logger
	cfg      domain.StudyConfig
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	sessions sessionStore,
	clock clockwork.Clock,
	cfg domain.StudyConfig,
) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid study config: %w", err)
	}

	return &Service{
		decks:    decks,
		cards:    cards,
		sessions: sessions,
		clock:    clock,
		log:      log.With("service", "study"),
		cfg:      cfg,
	}, nil
}

// getSession resolves a session id, deleting and reporting sessions whose TTL
// has elapsed. After expiry deletion a second lookup fails with
// ErrSessionNotFound, which is the intended caller-visible behavior.
func (s *Service) getSession(id string) (*Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.clock.Now().After(sess.ExpiresAt) {
		s.sessions.Delete(id)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}
