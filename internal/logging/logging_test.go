package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarigelamin1997/tradesense-sub009/internal/logging"
)

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradesense.log")

	result, err := logging.New(logging.Config{Level: "info", Format: "json", File: path})
	require.NoError(t, err)
	assert.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Str("event", "test").Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["event"])
}

func TestNew_BadFileFallsBackToStderr(t *testing.T) {
	result, err := logging.New(logging.Config{
		Level: "info",
		File:  filepath.Join(t.TempDir(), "missing", "nested", "out.log"),
	})

	assert.Error(t, err)
	assert.False(t, result.UsingFile)
	// The fallback logger is still usable.
	result.Logger.Debug().Msg("dropped below info level")
	assert.NoError(t, result.Close())
}

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			result, err := logging.New(logging.Config{Level: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Logger.GetLevel())
		})
	}
}

func TestComponentLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "component.log")
	result, err := logging.New(logging.Config{Level: "debug", File: path})
	require.NoError(t, err)

	child := logging.ComponentLogger(result.Logger, "journal")
	child.Info().Msg("loaded")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "journal", entry["component"])
}

func TestContextRoundTrip(t *testing.T) {
	result, err := logging.New(logging.Config{Level: "debug"})
	require.NoError(t, err)

	ctx := logging.WithContext(context.Background(), result.Logger)
	got := logging.FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, zerolog.DebugLevel, got.GetLevel())

	// A bare context yields a usable disabled logger, never nil.
	assert.NotNil(t, logging.FromContext(context.Background()))
}
