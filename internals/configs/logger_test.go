package configs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "json", "warn")

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "text", "debug")
	l.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nope"))
}

func TestGetEnvDefaults(t *testing.T) {
	t.Setenv("APTADS_TEST_INT", "42")
	t.Setenv("APTADS_TEST_BOOL", "true")
	t.Setenv("APTADS_TEST_EMPTY", "")

	assert.Equal(t, 42, GetEnvInt("APTADS_TEST_INT", 1))
	assert.Equal(t, 7, GetEnvInt("APTADS_TEST_MISSING", 7))
	assert.True(t, GetEnvBool("APTADS_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnv("APTADS_TEST_EMPTY", "fallback"))
}
