package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be \"json\" or \"text\" (got %q)", c.Log.Format)
	}

	if err := c.Study.Domain().Validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.Study.MaxSessionLimit > 50 {
		return fmt.Errorf("study.max_session_limit must be <= 50 (got %d)", c.Study.MaxSessionLimit)
	}

	return nil
}
