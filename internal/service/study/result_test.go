package study

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

func TestFinalizeSession(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sess := &Session{
		StartedAt:  start,
		TotalCards: 3,
		Stats: domain.SessionStats{
			CardsReviewed:   2,
			Difficulty:      domain.DifficultyCounts{Normal: 1, Hard: 1},
			ResponseTimesMs: []int64{30_000, 90_000},
			StartedAt:       start,
		},
	}

	result := finalizeSession(sess, start.Add(2*time.Minute))

	require.Equal(t, 3, result.TotalCards)
	require.Equal(t, 2, result.CardsReviewed)
	require.Equal(t, 67, result.CompletionRate) // round(100*2/3)
	require.Equal(t, int64(120_000), result.DurationMs)
	require.Equal(t, int64(60_000), result.AverageResponseMs)
	require.Equal(t, 1, result.Difficulty.Hard)
}

func TestFinalizeSession_NoCards(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sess := &Session{StartedAt: start, Stats: domain.SessionStats{StartedAt: start}}

	result := finalizeSession(sess, start)

	require.Equal(t, 0, result.CompletionRate, "zero totals must not divide by zero")
	require.Equal(t, int64(0), result.AverageResponseMs)
}
