package docxwriter

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/render"
)

// Environment variables read by ConfigFromEnvironment.
const (
	EnvLogLevel     = "DOCXWRITER_LOG_LEVEL"
	EnvStrictMode   = "DOCXWRITER_STRICT_MODE"
	EnvListGrouping = "DOCXWRITER_LIST_GROUPING"
	EnvLockTimeout  = "DOCXWRITER_LOCK_TIMEOUT"
)

// Config holds the options of a document write.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictMode turns element type mismatches into errors instead of no-ops
	StrictMode bool
	// ListGrouping selects how a numbering id that reappears after an
	// interruption is grouped: "merge" continues the earlier group, "split"
	// starts a new one.
	ListGrouping string
	// LockTimeout bounds how long Save waits for the output file lock.
	LockTimeout time.Duration
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		StrictMode:   false,
		ListGrouping: render.MergeReopenedGroups.String(),
		LockTimeout:  5 * time.Second,
	}
}

// ConfigFromEnvironment creates a configuration from DOCXWRITER_* environment
// variables. Unparseable values are ignored.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv(EnvLogLevel); val != "" {
		config.LogLevel = strings.ToLower(val)
	}
	if val := os.Getenv(EnvStrictMode); val != "" {
		config.StrictMode = parseBool(val)
	}
	if val := os.Getenv(EnvListGrouping); val != "" {
		config.ListGrouping = strings.ToLower(val)
	}
	if val := os.Getenv(EnvLockTimeout); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.LockTimeout = d
		}
	}

	return config
}

// NewConfigWithDefaults copies overrides and fills unset fields with defaults.
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()
	if overrides == nil {
		return defaults
	}

	config := *overrides
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.ListGrouping == "" {
		config.ListGrouping = defaults.ListGrouping
	}
	if config.LockTimeout == 0 {
		config.LockTimeout = defaults.LockTimeout
	}
	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if _, err := render.ParseGroupMode(c.ListGrouping); err != nil {
		return err
	}

	if c.LockTimeout < 0 {
		return fmt.Errorf("lock timeout cannot be negative: %s", c.LockTimeout)
	}
	return nil
}

// GroupMode returns the boundary grouping mode. Invalid values fall back to
// merging.
func (c *Config) GroupMode() render.GroupMode {
	mode, _ := render.ParseGroupMode(c.ListGrouping)
	return mode
}

// GetGlobalConfig returns a copy of the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration and updates the global logger.
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	UpdateLoggerFromConfig()
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
