package study

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// CardView is a flashcard formatted for display, stripped of internal
// references like deck and owner ids. Transports serialize it as-is.
type CardView struct {
	ID          uuid.UUID
	Front       string
	Back        string
	Difficulty  domain.Difficulty
	ReviewCount int
}

// StartSessionResult is returned by StartSession. CurrentCard is the first
// card of the queue, already consumed from it.
type StartSessionResult struct {
	SessionID   string
	TotalCards  int
	CurrentCard *CardView
	QueueLength int
	Stats       domain.SessionStats
	DeckName    string
}

// NextCardResult is returned by GetNextCard. When the queue is exhausted
// SessionFinished is set and FinalStats carries the totals. This is a normal
// result, not an error; callers must check the flag.
type NextCardResult struct {
	SessionFinished bool
	Message         string
	FinalStats      *domain.SessionStats

	CurrentCard *CardView
	QueueLength int
	Progress    *QueueProgress
	Stats       domain.SessionStats
}

// ReviewCardResult is returned by ReviewCard.
type ReviewCardResult struct {
	CardUpdated *CardView
	Stats       domain.SessionStats
}

// SessionStatusResult is the read-only view of a session.
type SessionStatusResult struct {
	SessionID      string
	Status         domain.SessionStatus
	TotalCards     int
	CardsReviewed  int
	RemainingCards int
	Progress       QueueProgress
	Stats          domain.SessionStats
	CurrentCard    *CardView
}

// FinishSessionResult is returned by FinishSession.
type FinishSessionResult struct {
	SessionID  string
	FinalStats domain.SessionResult
}

// GlobalStats is a debug aggregate over every session currently held,
// regardless of user.
type GlobalStats struct {
	TotalSessions        int
	ActiveSessions       int
	TotalCardsReviewed   int
	AverageSessionTimeMs int64
}

// finalizeSession computes the completed-session aggregate. Callers hold the
// session lock.
func finalizeSession(sess *Session, now time.Time) domain.SessionResult {
	stats := sess.Stats

	rate := 0
	if sess.TotalCards > 0 {
		rate = int(math.Round(float64(stats.CardsReviewed) / float64(sess.TotalCards) * 100))
	}

	var avg int64
	if len(stats.ResponseTimesMs) > 0 {
		var sum int64
		for _, ms := range stats.ResponseTimesMs {
			sum += ms
		}
		avg = sum / int64(len(stats.ResponseTimesMs))
	}

	return domain.SessionResult{
		TotalCards:        sess.TotalCards,
		CardsReviewed:     stats.CardsReviewed,
		CompletionRate:    rate,
		Difficulty:        stats.Difficulty,
		DurationMs:        now.Sub(sess.StartedAt).Milliseconds(),
		AverageResponseMs: avg,
	}
}
