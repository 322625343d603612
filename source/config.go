package source

import (
	"fmt"
	"strings"
)

// Config is the configuration for the NATS membership source.
type Config struct {
	// SubjectPrefix is the subject prefix membership snapshots are
	// published on. Snapshots for a service are expected on
	// "<SubjectPrefix>.<serviceID>".
	SubjectPrefix string `yaml:"subjectPrefix"`

	// QueueSize is the per-registration buffer for decoded snapshots
	// awaiting delivery. When the buffer is full the oldest pending
	// snapshot is dropped, so the newest view always wins.
	QueueSize int `yaml:"queueSize"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		SubjectPrefix: "membership",
		QueueSize:     16,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = defaults.SubjectPrefix
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = defaults.QueueSize
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Rules:
//   - SubjectPrefix must be non-empty and must not contain NATS wildcard
//     or separator-sensitive characters (spaces, '*', '>')
//   - QueueSize must be > 0
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.SubjectPrefix == "" {
		return fmt.Errorf("SubjectPrefix must not be empty")
	}
	if strings.ContainsAny(cfg.SubjectPrefix, " *>") {
		return fmt.Errorf("SubjectPrefix %q must not contain spaces or NATS wildcards", cfg.SubjectPrefix)
	}
	if cfg.QueueSize <= 0 {
		return fmt.Errorf("QueueSize must be > 0, got %d", cfg.QueueSize)
	}

	return nil
}
