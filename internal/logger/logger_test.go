package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "debug", FormatJSON))
	t.Cleanup(func() { _ = Configure(&bytes.Buffer{}, "info", FormatText) })

	Debug("resolved badge", "input", "Metal", "badge", "badge-metal")

	var entry map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "resolved badge", entry["message"])
	assert.Equal(t, "Metal", entry["input"])
	assert.Equal(t, "badge-metal", entry["badge"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "warn", FormatJSON))
	t.Cleanup(func() { _ = Configure(&bytes.Buffer{}, "info", FormatText) })

	Debug("hidden")
	Info("hidden too")
	Warn("shown")
	Error("failed", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"shown"`)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestConfigure_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "info", FormatText))
	t.Cleanup(func() { _ = Configure(&bytes.Buffer{}, "info", FormatText) })

	Info("listing categories", "count", 5)

	out := buf.String()
	assert.Contains(t, out, "listing categories")
	assert.Contains(t, out, "count=5")
	assert.NotContains(t, out, "\x1b[", "no colors when not writing to a terminal")
}

func TestConfigure_Invalid(t *testing.T) {
	assert.Error(t, Configure(&bytes.Buffer{}, "loud", FormatText))
	assert.Error(t, Configure(&bytes.Buffer{}, "info", "xml"))
}

func TestGet_InitializesOnce(t *testing.T) {
	assert.NotNil(t, Get())
	assert.Same(t, Get(), Get())
}
