package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/the-line/internal/config"
)

func TestNew_Format(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{"development uses text", "development", false},
		{"production uses json", "production", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, &config.Config{Environment: tt.environment, LogLevel: slog.LevelInfo})
			WithSession(log, "abc").Info("turn complete")

			var decoded map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &decoded) == nil
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.Contains(t, buf.String(), "abc")
			assert.Contains(t, buf.String(), "turn complete")
		})
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{LogLevel: slog.LevelWarn})

	log.Info("hidden")
	WithError(log, errors.New("boom")).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "boom")
}

func TestSetup_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	cfg := &config.Config{LogFile: path, LogLevel: slog.LevelInfo}

	log, closer, err := Setup(cfg)
	require.NoError(t, err)
	log.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file = %q, want it to contain the message", string(data))
	}
}

func TestSetup_BadLogFile(t *testing.T) {
	cfg := &config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "game.log")}
	_, _, err := Setup(cfg)
	assert.Error(t, err)
}
