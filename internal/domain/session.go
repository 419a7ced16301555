package domain

import (
	"slices"
	"time"
)

// SessionStatus represents the lifecycle state of a study session.
type SessionStatus string

const (
	SessionStatusActive   SessionStatus = "ACTIVE"
	SessionStatusFinished SessionStatus = "FINISHED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusFinished:
		return true
	}
	return false
}

// DifficultyCounts holds per-difficulty review counters for a study session.
type DifficultyCounts struct {
	Easy   int
	Normal int
	Hard   int
}

// Inc increments the counter matching the given difficulty.
// Invalid values are ignored.
func (c *DifficultyCounts) Inc(d Difficulty) {
	switch d {
	case DifficultyEasy:
		c.Easy++
	case DifficultyNormal:
		c.Normal++
	case DifficultyHard:
		c.Hard++
	}
}

// SessionStats is the running aggregate of one study session.
// ResponseTimesMs samples are measured from session start, not from when each
// card was shown.
type SessionStats struct {
	CardsReviewed   int
	Difficulty      DifficultyCounts
	ResponseTimesMs []int64
	TimeSpentMs     int64
	StartedAt       time.Time
}

// Clone returns a copy that is safe to hand out after the owning session's
// lock is released.
func (s SessionStats) Clone() SessionStats {
	s.ResponseTimesMs = slices.Clone(s.ResponseTimesMs)
	return s
}

// SessionResult holds the final aggregate of a finished study session.
type SessionResult struct {
	TotalCards        int
	CardsReviewed     int
	CompletionRate    int // rounded percent, 0 when the session had no cards
	Difficulty        DifficultyCounts
	DurationMs        int64
	AverageResponseMs int64
}
