package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact
	Output string `yaml:"output"` // stderr (default) or stdout
}

// bracketFields are rendered as [value] prefixes by CompactFormatter, in this order.
var bracketFields = []string{"component", "profile"}

// CompactFormatter implements a custom formatter for compact logging
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		b.WriteString(fmt.Sprintf("[%s]", entry.Time.Format("15:04:05")))
	}

	b.WriteString(fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())))

	for _, key := range bracketFields {
		if v, ok := entry.Data[key]; ok {
			b.WriteString(fmt.Sprintf("[%v]", v))
		}
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if !isBracketField(k) {
			keys = append(keys, k)
		}
	}

	if len(keys) > 0 {
		// Sort fields for consistent output
		sort.Strings(keys)

		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s=%v", key, entry.Data[key]))
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func isBracketField(key string) bool {
	for _, f := range bracketFields {
		if f == key {
			return true
		}
	}
	return false
}

// InitLogger initializes the global logger with the provided configuration
func InitLogger(config LogConfig) {
	Logger = logrus.New()
	Logger.SetOutput(outputFor(config.Output))

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		// Default to info if invalid level
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple", "":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
		Logger.Warnf("Invalid log format '%s', defaulting to 'simple'", config.Format)
	}

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

func outputFor(name string) io.Writer {
	if strings.EqualFold(name, "stdout") {
		return os.Stdout
	}
	return os.Stderr
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{
			Level:  "warn",
			Format: "simple",
		})
	}
	return Logger
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithProfile(profile string) *logrus.Entry {
	return GetLogger().WithField("profile", profile)
}

func WithComponentAndProfile(component, profile string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"profile":   profile,
	})
}

func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
