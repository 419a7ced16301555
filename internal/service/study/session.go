package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// StartSession validates deck access, builds the priority queue and registers
// a new session with a fresh TTL. The first card is consumed from the queue
// here, so the first GetNextCard call returns the second card.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*StartSessionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit > s.cfg.MaxSessionLimit {
		return nil, domain.NewValidationError("limit",
			fmt.Sprintf("must be at most %d", s.cfg.MaxSessionLimit))
	}

	now := s.clock.Now()

	// Expired sessions are reclaimed lazily on access; starting a session is
	// frequent enough to double as the garbage collection point.
	if removed := s.sessions.Sweep(now); removed > 0 {
		s.log.InfoContext(ctx, "expired sessions swept", slog.Int("removed", removed))
	}

	deck, err := s.decks.GetByID(ctx, input.DeckID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}
	if deck.UserID != input.UserID {
		return nil, domain.ErrAccessDenied
	}

	cards, err := s.cards.GetByDeckID(ctx, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("get cards: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultSessionLimit
	}
	// The cap trims the list in fetch order before any scoring happens, so
	// cards past the Nth never enter the queue even when they are more
	// urgent. Long-standing behavior that callers' expectations are pinned
	// to; do not reorder with the sort.
	if len(cards) > limit {
		cards = cards[:limit]
	}

	if len(cards) == 0 {
		return nil, domain.ErrNoCardsAvailable
	}

	queue := NewStudyQueue(cards, now)
	first := queue.Next()

	sess := &Session{
		ID:         "sess_" + uuid.NewString(),
		UserID:     input.UserID,
		DeckID:     input.DeckID,
		DeckName:   deck.Name,
		Status:     domain.SessionStatusActive,
		StartedAt:  now,
		ExpiresAt:  now.Add(s.cfg.SessionTTL),
		TotalCards: len(cards),
		Queue:      queue,
		Stats:      domain.SessionStats{StartedAt: now},
	}
	s.sessions.Put(sess)

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", sess.ID),
		slog.String("user_id", input.UserID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.Int("total_cards", len(cards)),
	)

	return &StartSessionResult{
		SessionID:   sess.ID,
		TotalCards:  len(cards),
		CurrentCard: displayCard(first),
		QueueLength: queue.Len(),
		Stats:       sess.Stats.Clone(),
		DeckName:    deck.Name,
	}, nil
}

// GetNextCard advances the session's queue and returns the card to show.
// An exhausted queue yields the finished sentinel, not an error.
func (s *Service) GetNextCard(ctx context.Context, sessionID string) (*NextCardResult, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Status != domain.SessionStatusActive {
		return nil, domain.ErrSessionNotActive
	}

	card := sess.Queue.Next()
	if card == nil {
		final := sess.Stats.Clone()
		return &NextCardResult{
			SessionFinished: true,
			Message:         "all cards in this session have been reviewed",
			FinalStats:      &final,
		}, nil
	}

	progress := sess.Queue.Progress()
	return &NextCardResult{
		CurrentCard: displayCard(card),
		QueueLength: sess.Queue.Len(),
		Progress:    &progress,
		Stats:       sess.Stats.Clone(),
	}, nil
}

// ReviewCard persists the scheduling update for a reviewed card and folds the
// review into the session stats.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*ReviewCardResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	// Lock order: the session mutex is never held across store or repo
	// calls. The sweep takes session mutexes while it checks eviction, so
	// holding one here through a slow card fetch would stall it.
	sess.mu.Lock()
	active := sess.Status == domain.SessionStatusActive
	sess.mu.Unlock()
	if !active {
		return nil, domain.ErrSessionNotActive
	}

	now := s.clock.Now()

	card, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	update := MarkReviewed(card, input.Difficulty, now)
	updated, err := s.cards.UpdateSchedule(ctx, card.ID, update)
	if err != nil {
		return nil, fmt.Errorf("update card schedule: %w", err)
	}

	sess.mu.Lock()
	if sess.Status != domain.SessionStatusActive {
		// The session finished while the update was in flight; the card's
		// schedule is persisted but the session no longer counts it.
		sess.mu.Unlock()
		return nil, domain.ErrSessionNotActive
	}
	stats := &sess.Stats
	stats.CardsReviewed++
	stats.Difficulty.Inc(input.Difficulty)
	// Response time is measured from session start, not from when the card
	// was shown.
	elapsed := now.Sub(stats.StartedAt).Milliseconds()
	stats.ResponseTimesMs = append(stats.ResponseTimesMs, elapsed)
	stats.TimeSpentMs = elapsed
	reviewed := stats.CardsReviewed
	statsCopy := stats.Clone()
	sess.mu.Unlock()

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("session_id", sess.ID),
		slog.String("card_id", card.ID.String()),
		slog.Int("difficulty", int(input.Difficulty)),
		slog.Int("cards_reviewed", reviewed),
	)

	return &ReviewCardResult{
		CardUpdated: displayCard(updated),
		Stats:       statsCopy,
	}, nil
}

// GetSessionStatus returns the session's progress without advancing the
// queue.
func (s *Service) GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatusResult, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &SessionStatusResult{
		SessionID:      sess.ID,
		Status:         sess.Status,
		TotalCards:     sess.TotalCards,
		CardsReviewed:  sess.Stats.CardsReviewed,
		RemainingCards: sess.Queue.Len() - sess.Queue.CurrentIndex(),
		Progress:       sess.Queue.Progress(),
		Stats:          sess.Stats.Clone(),
		CurrentCard:    displayCard(sess.Queue.Current()),
	}, nil
}

// FinishSession closes the session and computes the final aggregate. The
// session stays readable for the configured retention window so late status
// reads still succeed; with zero retention it is removed immediately.
func (s *Service) FinishSession(ctx context.Context, sessionID string) (*FinishSessionResult, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.Status != domain.SessionStatusActive {
		sess.mu.Unlock()
		return nil, domain.ErrSessionNotActive
	}

	now := s.clock.Now()
	sess.Status = domain.SessionStatusFinished
	sess.FinishedAt = &now

	retained := s.cfg.FinishedRetention > 0
	if retained {
		at := now.Add(s.cfg.FinishedRetention)
		sess.removeAfter = &at
	}

	final := finalizeSession(sess, now)
	sess.mu.Unlock()

	// Deleting happens after the unlock; the store is never called with a
	// session mutex held. See MemorySessionStore.Sweep for the other half
	// of the lock order.
	if !retained {
		s.sessions.Delete(sess.ID)
	}

	s.log.InfoContext(ctx, "session finished",
		slog.String("session_id", sess.ID),
		slog.Int("cards_reviewed", final.CardsReviewed),
		slog.Int("completion_rate", final.CompletionRate),
	)

	return &FinishSessionResult{
		SessionID:  sess.ID,
		FinalStats: final,
	}, nil
}

// AbandonSession drops a session without computing final stats. Idempotent:
// missing and expired sessions are a no-op.
func (s *Service) AbandonSession(ctx context.Context, sessionID string) error {
	sess, err := s.getSession(sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return nil
		}
		return err
	}

	s.sessions.Delete(sess.ID)

	s.log.InfoContext(ctx, "session abandoned",
		slog.String("session_id", sess.ID),
	)

	return nil
}

// GetGlobalStats aggregates over all currently-held sessions, regardless of
// user. Debug/admin surface.
func (s *Service) GetGlobalStats(ctx context.Context) GlobalStats {
	now := s.clock.Now()
	all := s.sessions.All()

	stats := GlobalStats{TotalSessions: len(all)}
	var totalDuration int64
	for _, sess := range all {
		sess.mu.Lock()
		if sess.Status == domain.SessionStatusActive {
			stats.ActiveSessions++
		}
		stats.TotalCardsReviewed += sess.Stats.CardsReviewed
		end := now
		if sess.FinishedAt != nil {
			end = *sess.FinishedAt
		}
		totalDuration += end.Sub(sess.StartedAt).Milliseconds()
		sess.mu.Unlock()
	}

	if len(all) > 0 {
		stats.AverageSessionTimeMs = totalDuration / int64(len(all))
	}
	return stats
}
