package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, parseLevel("debug"))
	assert.Equal(t, WARN, parseLevel("WARN"))
	assert.Equal(t, INFO, parseLevel("bogus"))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger("warn")
	lg.SetOutput(&buf)
	lg.EnableColors(false)

	lg.Debug("hidden")
	lg.Info("also hidden")
	lg.Warn("shown")
	lg.Errorf("also %s", "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "[WARN ]")
	assert.Contains(t, out, "[ERROR]")
}

func TestColorsDisabled(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger("debug")
	lg.SetOutput(&buf)
	lg.EnableColors(false)

	lg.Info("plain line")

	assert.False(t, strings.Contains(buf.String(), "\033["))
}
