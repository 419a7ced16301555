package config

import (
	"time"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Study StudyConfig `yaml:"study"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StudyConfig holds study-session scheduling settings.
type StudyConfig struct {
	SessionTTL          time.Duration `yaml:"session_ttl"           env:"STUDY_SESSION_TTL"           env-default:"30m"`
	FinishedRetention   time.Duration `yaml:"finished_retention"    env:"STUDY_FINISHED_RETENTION"    env-default:"5m"`
	DefaultSessionLimit int           `yaml:"default_session_limit" env:"STUDY_DEFAULT_SESSION_LIMIT" env-default:"20"`
	MaxSessionLimit     int           `yaml:"max_session_limit"     env:"STUDY_MAX_SESSION_LIMIT"     env-default:"50"`
}

// Domain converts the loaded settings into the pure domain type the study
// service consumes.
func (c StudyConfig) Domain() domain.StudyConfig {
	return domain.StudyConfig{
		SessionTTL:          c.SessionTTL,
		FinishedRetention:   c.FinishedRetention,
		DefaultSessionLimit: c.DefaultSessionLimit,
		MaxSessionLimit:     c.MaxSessionLimit,
	}
}
