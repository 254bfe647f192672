package docxwriter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel orders log severities.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogOff
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	case LogOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Fields are key/value pairs appended to every line of a logger.
type Fields map[string]interface{}

// Logger is a leveled line logger. Loggers derived with WithField share the
// writer and level of their parent.
type Logger struct {
	out    *logOutput
	fields Fields
}

type logOutput struct {
	mu     sync.Mutex
	writer io.Writer
	level  LogLevel
}

var (
	globalLogger     *Logger
	globalLoggerMu   sync.RWMutex
	globalLoggerOnce sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		globalLogger = NewLogger(os.Stderr, parseLogLevel(config.LogLevel))
	})
}

func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LogDebug
	case "info":
		return LogInfo
	case "warn":
		return LogWarn
	case "error":
		return LogError
	case "off":
		return LogOff
	default:
		return LogInfo
	}
}

// NewLogger creates a logger writing lines at or above level to w.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		out:    &logOutput{writer: w, level: level},
		fields: make(Fields),
	}
}

// SetLevel changes the level of the logger and every logger derived from it.
func (l *Logger) SetLevel(level LogLevel) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.level = level
}

// Level returns the current level.
func (l *Logger) Level() LogLevel {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	return l.out.level
}

// IsDebugMode reports whether debug lines are written.
func (l *Logger) IsDebugMode() bool {
	return l.Level() == LogDebug
}

// withLevel returns a logger writing to the same destination with its own
// level. Level changes on either logger do not affect the other.
func (l *Logger) withLevel(level LogLevel) *Logger {
	l.out.mu.Lock()
	w := l.out.writer
	l.out.mu.Unlock()
	return &Logger{out: &logOutput{writer: w, level: level}, fields: l.fields}
}

// configLogger returns the global logger filtered at the level of config.
func configLogger(config *Config) *Logger {
	return GetLogger().withLevel(parseLogLevel(config.LogLevel))
}

// WithField returns a logger that appends key=value to each line.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a logger that appends all fields to each line.
func (l *Logger) WithFields(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{out: l.out, fields: merged}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if level < l.out.level || level == LogOff {
		return
	}

	var line strings.Builder
	line.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&line, " [%s] ", level)
	fmt.Fprintf(&line, format, args...)

	// Sorted so lines are stable across runs
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&line, " %s=%v", k, l.fields[k])
	}

	fmt.Fprintln(l.out.writer, line.String())
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// SetLogger replaces the global logger.
func SetLogger(logger *Logger) {
	initGlobalLogger()
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = logger
}

// GetLogger returns the global logger.
func GetLogger() *Logger {
	initGlobalLogger()
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}

func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

func WithFields(fields Fields) *Logger {
	return GetLogger().WithFields(fields)
}

// UpdateLoggerFromConfig sets the global logger level from the global configuration.
func UpdateLoggerFromConfig() {
	GetLogger().SetLevel(parseLogLevel(GetGlobalConfig().LogLevel))
}
