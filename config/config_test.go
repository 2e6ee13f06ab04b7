package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	errorsPkg "github.com/ygrebnov/inquire/errors"
	"github.com/ygrebnov/inquire/patterns"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INQUIRE_PATTERNS_FILE", "")
	t.Setenv("INQUIRE_LOG_LEVEL", "")
	t.Setenv("INQUIRE_STRICT_PATTERNS", "")
	os.Unsetenv("INQUIRE_PATTERNS_FILE")
	os.Unsetenv("INQUIRE_LOG_LEVEL")
	os.Unsetenv("INQUIRE_STRICT_PATTERNS")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info"}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("INQUIRE_PATTERNS_FILE", "/etc/inquire/patterns.yaml")
	t.Setenv("INQUIRE_LOG_LEVEL", "debug")
	t.Setenv("INQUIRE_STRICT_PATTERNS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		PatternsFile:   "/etc/inquire/patterns.yaml",
		LogLevel:       "debug",
		StrictPatterns: true,
	}, cfg)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("INQUIRE_STRICT_PATTERNS", "maybe")

	_, err := Load()
	assert.ErrorIs(t, err, errorsPkg.ErrLoadConfig)
}

func TestPatterns(t *testing.T) {
	t.Parallel()

	t.Run("defaults without file", func(t *testing.T) {
		t.Parallel()

		got, err := Patterns(Config{}, nil)
		require.NoError(t, err)
		assert.Equal(t, patterns.Default(), got)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "patterns.yaml")
		require.NoError(t, os.WriteFile(path, []byte("numeric: '[0-9]{1,3}'\nzip: '[0-9]{5}'\n"), 0o600))

		got, err := Patterns(Config{PatternsFile: path}, nil)
		require.NoError(t, err)
		assert.Equal(t, `[0-9]{1,3}`, got["numeric"])
		assert.Equal(t, `[0-9]{5}`, got["zip"])
		assert.Equal(t, patterns.Email, got["email"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Patterns(Config{PatternsFile: filepath.Join(t.TempDir(), "nope.toml")}, nil)
		assert.ErrorIs(t, err, errorsPkg.ErrLoadPatterns)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(Config{LogLevel: "warn"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger(Config{LogLevel: "loud"})
	assert.ErrorIs(t, err, errorsPkg.ErrLoadConfig)
}
