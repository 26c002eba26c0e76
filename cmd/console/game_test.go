package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/the-line/internal/config"
	"github.com/jwebster45206/the-line/internal/journal"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestGame(t *testing.T, j *journal.RedisJournal) *Game {
	t.Helper()
	world, err := scenario.DefaultWorld()
	require.NoError(t, err)
	g := &Game{
		World:  world,
		Source: &chance.Scripted{},
		Logger: testLogger(),
	}
	if j != nil {
		g.Journal = j
	} else {
		g.Journal = journal.Nop{}
	}
	return g
}

func TestPlay_MigrantReachesTucson(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	rj, err := journal.NewRedisJournal(ctx, "redis://"+mr.Addr(), testLogger())
	require.NoError(t, err)
	defer rj.Close()

	g := newTestGame(t, rj)
	script := prompt.NewScript("", "1", "maria", "oaxaca", "to find work", "west", "north", "north", "north")

	require.NoError(t, g.Play(ctx, script))

	said := strings.Join(script.Said(), "\n")
	assert.Contains(t, said, "CHARACTER CREATION")
	assert.Contains(t, said, "Your journey begins in")
	assert.Contains(t, said, "You've successfully reached Tucson.")
	assert.Contains(t, said, "JOURNEY SUMMARY")
	assert.Contains(t, said, "EPILOGUE")

	journeys, err := rj.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, "Maria", journeys[0].Record.Player)
	assert.Equal(t, "success", journeys[0].Record.Ending)
	assert.Equal(t, 40, journeys[0].Record.Distance)
}

func TestPlay_ClosedBeforeStart(t *testing.T) {
	g := newTestGame(t, nil)
	script := prompt.NewScript()

	require.NoError(t, g.Play(context.Background(), script))
	assert.Len(t, script.Output, 2)
	assert.Equal(t, prompt.Title, script.Output[0].Tone)
}

func TestPlay_QuitWithoutMatcher(t *testing.T) {
	g := newTestGame(t, nil)
	g.NoMatcher = true
	script := prompt.NewScript("", "2", "Cruz", "12", "quit", "y")

	require.NoError(t, g.Play(context.Background(), script))

	said := strings.Join(script.Said(), "\n")
	assert.Contains(t, said, "JOURNEY SUMMARY")
	assert.NotContains(t, said, "EPILOGUE")
}

func TestLoadWorld(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantLimit int
		wantErr   bool
	}{
		{
			name:      "embedded world",
			cfg:       config.Config{},
			wantLimit: scenario.DefaultTurnLimit,
		},
		{
			name:      "turn limit override",
			cfg:       config.Config{TurnLimit: 12},
			wantLimit: 12,
		},
		{
			name:      "scenario file",
			cfg:       config.Config{ScenarioFile: filepath.Join("..", "..", "pkg", "scenario", scenario.DefaultFile)},
			wantLimit: scenario.DefaultTurnLimit,
		},
		{
			name:    "missing scenario file",
			cfg:     config.Config{ScenarioFile: filepath.Join(t.TempDir(), "missing.json")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, err := loadWorld(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, world.TurnLimit)
		})
	}
}

func TestOpenJournal_FallsBackToNop(t *testing.T) {
	j, closeJournal := openJournal(context.Background(), &config.Config{}, testLogger())
	defer closeJournal()
	assert.IsType(t, journal.Nop{}, j)

	j, closeJournal = openJournal(context.Background(), &config.Config{RedisURL: "redis://127.0.0.1:1"}, testLogger())
	defer closeJournal()
	assert.IsType(t, journal.Nop{}, j)
}
