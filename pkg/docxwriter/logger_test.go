package docxwriter

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name        string
		level       LogLevel
		expected    []string
		notExpected []string
	}{
		{
			name:     "debug level shows all messages",
			level:    LogDebug,
			expected: []string{"[DEBUG] debug message", "[INFO] info message", "[WARN] warn message", "[ERROR] error message"},
		},
		{
			name:        "warn level hides debug and info",
			level:       LogWarn,
			expected:    []string{"[WARN] warn message", "[ERROR] error message"},
			notExpected: []string{"[DEBUG]", "[INFO]"},
		},
		{
			name:        "off writes nothing",
			level:       LogOff,
			notExpected: []string{"message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)
			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			output := buf.String()
			for _, want := range tt.expected {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got %q", want, output)
				}
			}
			for _, unwanted := range tt.notExpected {
				if strings.Contains(output, unwanted) {
					t.Errorf("expected output not to contain %q, got %q", unwanted, output)
				}
			}
		})
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, LogInfo)
	logger := base.WithField("render", "abc").WithFields(Fields{"container": "section", "count": 2})

	logger.Info("analysed")
	line := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(line, "[INFO] analysed container=section count=2 render=abc") {
		t.Errorf("unexpected log line %q", line)
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "render=") {
		t.Errorf("fields leaked into the parent logger: %q", buf.String())
	}

	// Derived loggers share the level of their parent
	base.SetLevel(LogError)
	buf.Reset()
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected derived logger to follow the parent level, got %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogDebug},
		{"INFO", LogInfo},
		{"warn", LogWarn},
		{"error", LogError},
		{"off", LogOff},
		{"unknown", LogInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.expected {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
