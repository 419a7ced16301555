package study

import (
	"math"
	"time"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// reviewIntervals maps a card's blended difficulty to the delay before its
// next review. Deliberately inverted relative to intuition: hard cards come
// back within hours, easy cards can wait days.
var reviewIntervals = map[domain.Difficulty]time.Duration{
	domain.DifficultyEasy:   72 * time.Hour,
	domain.DifficultyNormal: 24 * time.Hour,
	domain.DifficultyHard:   6 * time.Hour,
}

// directReviewIntervals is the mapping used by the non-session "mark as
// reviewed" path. It disagrees with reviewIntervals and both tables have
// callers, so they stay separate.
// TODO: collapse onto reviewIntervals once the direct-review path is retired.
var directReviewIntervals = map[domain.Difficulty]time.Duration{
	domain.DifficultyEasy:   24 * time.Hour,
	domain.DifficultyNormal: 72 * time.Hour,
	domain.DifficultyHard:   168 * time.Hour,
}

// BlendDifficulty averages the card's stored difficulty with the difficulty
// the user just reported, rounding half away from zero and clamping to the
// valid range.
func BlendDifficulty(current, user domain.Difficulty) domain.Difficulty {
	blended := domain.Difficulty(math.Round(float64(current+user) / 2))
	if blended < domain.DifficultyEasy {
		return domain.DifficultyEasy
	}
	if blended > domain.DifficultyHard {
		return domain.DifficultyHard
	}
	return blended
}

// NextReviewDate computes when a card should come back after a session review.
func NextReviewDate(current, user domain.Difficulty, now time.Time) time.Time {
	return now.Add(reviewIntervals[BlendDifficulty(current, user)])
}

// DirectReviewDate computes the next review for the non-session path, where
// the card keeps its stored difficulty and no blending happens.
func DirectReviewDate(d domain.Difficulty, now time.Time) time.Time {
	return now.Add(directReviewIntervals[d])
}

// ScheduleUpdate holds the scheduling fields to persist on a card after a
// review.
type ScheduleUpdate struct {
	Difficulty   domain.Difficulty
	NextReview   time.Time
	LastReviewed time.Time
	ReviewCount  int
}

// MarkReviewed computes the scheduling mutation for a reviewed card.
// Pure value calculation: no store access and no side effects.
func MarkReviewed(card *domain.Flashcard, user domain.Difficulty, now time.Time) ScheduleUpdate {
	d := BlendDifficulty(card.Difficulty, user)
	return ScheduleUpdate{
		Difficulty:   d,
		NextReview:   now.Add(reviewIntervals[d]),
		LastReviewed: now,
		ReviewCount:  card.ReviewCount + 1,
	}
}
