package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestReplaceAttr(t *testing.T) {
	a := replaceAttr(nil, slog.String("error", "boom"))
	assert.Equal(t, "err", a.Key)

	a = replaceAttr(nil, slog.String("module", "app"))
	assert.Equal(t, "module", a.Key)
}

func TestNewTB(t *testing.T) {
	logger := NewTB(t, slog.LevelDebug)
	logger.Debug("written through t.Log", "error", "none")
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
