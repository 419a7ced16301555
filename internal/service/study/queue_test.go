package study

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

func testCard(next *time.Time, last *time.Time, difficulty domain.Difficulty, reviews int) *domain.Flashcard {
	return &domain.Flashcard{
		ID:           uuid.New(),
		Difficulty:   difficulty,
		ReviewCount:  reviews,
		LastReviewed: last,
		NextReview:   next,
	}
}

func TestNewStudyQueue_OrdersByUrgency(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	overdue := testCard(ptr(now.Add(-24*time.Hour)), &yesterday, 2, 2)
	never := testCard(nil, &yesterday, 2, 2)
	dueSoon := testCard(ptr(now.Add(12*time.Hour)), &yesterday, 2, 2)
	dueFar := testCard(ptr(now.Add(10*24*time.Hour)), &yesterday, 2, 2)

	q := NewStudyQueue([]*domain.Flashcard{overdue, never, dueSoon, dueFar}, now)

	want := []uuid.UUID{never.ID, overdue.ID, dueSoon.ID, dueFar.ID}
	for i, id := range want {
		card := q.Next()
		require.NotNil(t, card, "card %d", i)
		require.Equal(t, id, card.ID, "position %d", i)
	}
	require.Nil(t, q.Next())
}

func TestNewStudyQueue_StableForEqualScores(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Identical scheduling state → identical scores → input order preserved.
	cards := make([]*domain.Flashcard, 5)
	for i := range cards {
		cards[i] = testCard(nil, nil, 2, 0)
	}

	q := NewStudyQueue(cards, now)
	for _, c := range cards {
		require.Equal(t, c.ID, q.Next().ID)
	}
}

func TestStudyQueue_NextExhaustionIsIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	q := NewStudyQueue([]*domain.Flashcard{testCard(nil, nil, 2, 0)}, now)

	require.NotNil(t, q.Next())
	require.Equal(t, 1, q.CurrentIndex())

	// Repeated calls past the end return nil and never move the cursor.
	for i := 0; i < 3; i++ {
		require.Nil(t, q.Next())
		require.Equal(t, 1, q.CurrentIndex())
	}
}

func TestStudyQueue_PreviousAtStart(t *testing.T) {
	t.Parallel()

	now := time.Now()
	q := NewStudyQueue([]*domain.Flashcard{testCard(nil, nil, 2, 0)}, now)

	require.Nil(t, q.Previous())
	require.Equal(t, 0, q.CurrentIndex())
}

func TestStudyQueue_PreviousStepsBack(t *testing.T) {
	t.Parallel()

	now := time.Now()
	first := testCard(nil, nil, 2, 0)
	second := testCard(ptr(now.Add(-time.Hour)), nil, 2, 0)
	q := NewStudyQueue([]*domain.Flashcard{first, second}, now)

	require.Equal(t, first.ID, q.Next().ID)
	require.Equal(t, second.ID, q.Next().ID)
	require.Equal(t, second.ID, q.Previous().ID)
	require.Equal(t, 1, q.CurrentIndex())
}

func TestStudyQueue_CurrentDoesNotAdvance(t *testing.T) {
	t.Parallel()

	now := time.Now()
	first := testCard(nil, nil, 2, 0)
	q := NewStudyQueue([]*domain.Flashcard{first}, now)

	require.Equal(t, first.ID, q.Current().ID)
	require.Equal(t, first.ID, q.Current().ID)
	require.Equal(t, 0, q.CurrentIndex())

	q.Next()
	require.Nil(t, q.Current())
}

func TestStudyQueue_SetCurrentIndexIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cards := []*domain.Flashcard{
		testCard(nil, nil, 2, 0),
		testCard(nil, nil, 2, 0),
		testCard(nil, nil, 2, 0),
	}
	q := NewStudyQueue(cards, now)
	q.Next()
	require.Equal(t, 1, q.CurrentIndex())

	q.SetCurrentIndex(-1)
	require.Equal(t, 1, q.CurrentIndex(), "negative index must be a no-op")

	q.SetCurrentIndex(q.Len() + 5)
	require.Equal(t, 1, q.CurrentIndex(), "index past length must be a no-op")

	// len(queue) itself is a legal cursor position (fully consumed).
	q.SetCurrentIndex(q.Len())
	require.Equal(t, 3, q.CurrentIndex())
	require.False(t, q.HasNext())

	q.Reset()
	require.Equal(t, 0, q.CurrentIndex())
	require.True(t, q.HasNext())
}

func TestStudyQueue_Stats(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	overdue := testCard(ptr(now.Add(-time.Hour)), nil, 2, 0)
	neverScheduled := testCard(nil, nil, 2, 0) // counts as overdue
	dueToday := testCard(ptr(now.Add(6*time.Hour)), nil, 2, 0)
	hardDueToday := testCard(ptr(now.Add(6*time.Hour)), nil, 3, 0) // in two buckets
	other := testCard(ptr(now.Add(5*24*time.Hour)), nil, 1, 0)

	q := NewStudyQueue([]*domain.Flashcard{overdue, neverScheduled, dueToday, hardDueToday, other}, now)
	q.Next()

	stats := q.Stats(now)
	require.Equal(t, 5, stats.Total)
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 4, stats.Remaining)
	require.Equal(t, 20, stats.Percentage)

	require.Equal(t, 2, stats.Distribution.Overdue)
	require.Equal(t, 2, stats.Distribution.DueToday)
	require.Equal(t, 1, stats.Distribution.Difficult)
	// Others is subtractive over overlapping buckets: 5 - 2 - 2 - 1 = 0,
	// even though only one card is truly "other".
	require.Equal(t, 0, stats.Distribution.Others)
}

func TestStudyQueue_StatsEmptyQueue(t *testing.T) {
	t.Parallel()

	q := NewStudyQueue(nil, time.Now())

	stats := q.Stats(time.Now())
	require.Equal(t, 0, stats.Total)
	require.Equal(t, 0, stats.Percentage, "no division by zero on empty queue")
}

func TestStudyQueue_ProgressIsOneIndexed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	q := NewStudyQueue([]*domain.Flashcard{
		testCard(nil, nil, 2, 0),
		testCard(nil, nil, 2, 0),
	}, now)

	p := q.Progress()
	require.Equal(t, 1, p.Current)
	require.Equal(t, 2, p.Total)
	require.Equal(t, 0, p.Percentage)

	q.Next()
	q.Next()

	// At the end Current reads one past Total. Display code relies on it.
	p = q.Progress()
	require.Equal(t, 3, p.Current)
	require.Equal(t, 2, p.Total)
	require.Equal(t, 100, p.Percentage)
	require.Equal(t, 0, p.Remaining)
}
