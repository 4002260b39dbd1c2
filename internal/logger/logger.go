package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var std = newLogger(os.Stdout, logrus.InfoLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		DisableColors:          true,
	})
	return l
}

// ParseLevel converts a string level name to a logrus level.
// Supported values: debug, info, warn, error (case-insensitive).
// Returns logrus.InfoLevel for unrecognized values.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Init initializes the global logger with the specified level.
// This should be called once at application startup.
func Init(level logrus.Level) {
	std.SetLevel(level)
}

// SetOutput redirects the global logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Debug logs a message at DEBUG level.
func Debug(msg string, args ...any) {
	std.WithFields(fields(args)).Debug(msg)
}

// Info logs a message at INFO level.
func Info(msg string, args ...any) {
	std.WithFields(fields(args)).Info(msg)
}

// Warn logs a message at WARN level.
func Warn(msg string, args ...any) {
	std.WithFields(fields(args)).Warn(msg)
}

// Error logs a message at ERROR level.
func Error(msg string, args ...any) {
	std.WithFields(fields(args)).Error(msg)
}

// fields turns alternating key/value arguments into logrus fields.
// A dangling value is kept under !BADKEY.
func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			f["!BADKEY"] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		value := args[i+1]
		if err, isErr := value.(error); isErr && err != nil {
			value = err.Error()
		}
		f[key] = value
	}
	return f
}
