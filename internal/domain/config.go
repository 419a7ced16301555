package domain

import (
	"fmt"
	"time"
)

// StudyConfig holds study-session scheduling parameters (pure domain type).
type StudyConfig struct {
	// SessionTTL is the window after which an idle session expires.
	SessionTTL time.Duration
	// FinishedRetention keeps finished sessions around for late stat reads.
	// Zero removes them immediately (useful in tests).
	FinishedRetention time.Duration
	// DefaultSessionLimit caps the card count when the caller passes none.
	DefaultSessionLimit int
	// MaxSessionLimit is the largest card count a caller may request.
	MaxSessionLimit int
}

// Validate checks the configuration invariants.
func (c StudyConfig) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", c.SessionTTL)
	}
	if c.FinishedRetention < 0 {
		return fmt.Errorf("finished_retention must be >= 0 (got %v)", c.FinishedRetention)
	}
	if c.DefaultSessionLimit < 1 {
		return fmt.Errorf("default_session_limit must be >= 1 (got %d)", c.DefaultSessionLimit)
	}
	if c.MaxSessionLimit < c.DefaultSessionLimit {
		return fmt.Errorf("max_session_limit must be >= default_session_limit (got %d < %d)",
			c.MaxSessionLimit, c.DefaultSessionLimit)
	}
	return nil
}
