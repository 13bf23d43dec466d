//go:build unit

package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	logger := logrus.New()
	entry := logrus.NewEntry(logger).WithFields(logrus.Fields{
		"component": "orchestrator",
		"profile":   "windows10",
		"step":      2,
		"command":   "netsh advfirewall set allprofiles state off",
	})
	entry.Level = logrus.InfoLevel
	entry.Message = "Step completed"
	entry.Time = time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)

	t.Run("WithoutTime", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t,
			"[INFO][orchestrator][windows10] Step completed (command=netsh advfirewall set allprofiles state off, step=2)\n",
			string(out))
	})

	t.Run("WithTime", func(t *testing.T) {
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("[13:04:05][INFO]")))
	})

	t.Run("NoFields", func(t *testing.T) {
		plain := logrus.NewEntry(logger)
		plain.Level = logrus.WarnLevel
		plain.Message = "hello"
		out, err := (&CompactFormatter{}).Format(plain)
		require.NoError(t, err)
		assert.Equal(t, "[WARNING] hello\n", string(out))
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("ValidLevelAndFormat", func(t *testing.T) {
		InitLogger(LogConfig{Level: "debug", Format: "json"})
		assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, Logger.Formatter)
	})

	t.Run("InvalidLevelDefaultsToInfo", func(t *testing.T) {
		InitLogger(LogConfig{Level: "chatty", Format: "compact"})
		assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
		assert.IsType(t, &CompactFormatter{}, Logger.Formatter)
	})

	t.Run("EmptyFormatIsSimple", func(t *testing.T) {
		InitLogger(LogConfig{Level: "info"})
		f, ok := Logger.Formatter.(*CompactFormatter)
		require.True(t, ok)
		assert.False(t, f.ShowTime)
	})
}

func TestHelpers(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(LogConfig{Level: "info", Format: "simple"})
	Logger.SetOutput(&buf)

	WithComponentAndProfile("resolver", "windows11").Info("Resolved")
	WithError(errors.New("boom")).Warn("Failed")

	out := buf.String()
	assert.Contains(t, out, "[INFO][resolver][windows11] Resolved")
	assert.Contains(t, out, "Failed (error=boom)")
}
