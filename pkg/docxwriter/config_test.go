package docxwriter

import (
	"testing"
	"time"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/render"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.LogLevel != "info" {
		t.Errorf("DefaultConfig LogLevel = %s, want info", config.LogLevel)
	}
	if config.StrictMode {
		t.Errorf("DefaultConfig StrictMode = true, want false")
	}
	if config.ListGrouping != "merge" {
		t.Errorf("DefaultConfig ListGrouping = %s, want merge", config.ListGrouping)
	}
	if config.LockTimeout != 5*time.Second {
		t.Errorf("DefaultConfig LockTimeout = %v, want 5s", config.LockTimeout)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig Validate() = %v, want nil", err)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "log level is lower cased",
			envVars: map[string]string{EnvLogLevel: "DEBUG"},
			check: func(t *testing.T, config *Config) {
				if config.LogLevel != "debug" {
					t.Errorf("LogLevel = %s, want debug", config.LogLevel)
				}
			},
		},
		{
			name:    "strict mode",
			envVars: map[string]string{EnvStrictMode: "yes"},
			check: func(t *testing.T, config *Config) {
				if !config.StrictMode {
					t.Errorf("StrictMode = false, want true")
				}
			},
		},
		{
			name:    "list grouping",
			envVars: map[string]string{EnvListGrouping: "split"},
			check: func(t *testing.T, config *Config) {
				if config.GroupMode() != render.SplitDisjointGroups {
					t.Errorf("GroupMode() = %v, want split", config.GroupMode())
				}
			},
		},
		{
			name:    "lock timeout",
			envVars: map[string]string{EnvLockTimeout: "750ms"},
			check: func(t *testing.T, config *Config) {
				if config.LockTimeout != 750*time.Millisecond {
					t.Errorf("LockTimeout = %v, want 750ms", config.LockTimeout)
				}
			},
		},
		{
			name:    "invalid lock timeout keeps the default",
			envVars: map[string]string{EnvLockTimeout: "soon"},
			check: func(t *testing.T, config *Config) {
				if config.LockTimeout != 5*time.Second {
					t.Errorf("LockTimeout = %v, want 5s (default)", config.LockTimeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}
			tt.check(t, ConfigFromEnvironment())
		})
	}
}

func TestNewConfigWithDefaults(t *testing.T) {
	config := NewConfigWithDefaults(&Config{StrictMode: true})
	if !config.StrictMode {
		t.Errorf("StrictMode = false, want true")
	}
	if config.LogLevel != "info" || config.ListGrouping != "merge" || config.LockTimeout != 5*time.Second {
		t.Errorf("defaults not applied: %+v", config)
	}
	if NewConfigWithDefaults(nil).LogLevel != "info" {
		t.Errorf("NewConfigWithDefaults(nil) did not return defaults")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"off log level", func(c *Config) { c.LogLevel = "off" }, false},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid list grouping", func(c *Config) { c.ListGrouping = "never" }, true},
		{"negative lock timeout", func(c *Config) { c.LockTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	config := DefaultConfig()
	config.LogLevel = "error"
	SetGlobalConfig(config)

	got := GetGlobalConfig()
	if got.LogLevel != "error" {
		t.Errorf("GetGlobalConfig LogLevel = %s, want error", got.LogLevel)
	}
	got.LogLevel = "debug"
	if GetGlobalConfig().LogLevel != "error" {
		t.Errorf("GetGlobalConfig returned a shared value")
	}
	if GetLogger().Level() != LogError {
		t.Errorf("global logger level = %v, want ERROR", GetLogger().Level())
	}
}
