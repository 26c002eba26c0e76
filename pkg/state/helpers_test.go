package state

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/narrative"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestGame builds the embedded world with a fresh player of kind.
func newTestGame(t *testing.T, kind actor.Kind) *GameState {
	t.Helper()
	w, err := scenario.DefaultWorld()
	require.NoError(t, err)
	p, err := w.NewPlayer(scenario.PlayerInfo{
		Name:           "Ana",
		Kind:           kind,
		Origin:         "Oaxaca",
		Motivation:     "work",
		YearsOfService: 5,
	})
	require.NoError(t, err)
	return NewGameState(w, p)
}

func newTestEngine(gs *GameState, src chance.Source, inputs ...string) (*Engine, *prompt.Script) {
	script := prompt.NewScript(inputs...)
	return NewEngine(gs, script, narrative.NewStory(src), src, testLogger()), script
}

// moveTo places the player at the location with id.
func moveTo(t *testing.T, gs *GameState, id string) *scenario.Location {
	t.Helper()
	l, err := gs.World.Location(id)
	require.NoError(t, err)
	gs.World.Place(gs.Player, l)
	return l
}

func saidWithTone(s *prompt.Script, tone prompt.Tone) []string {
	var out []string
	for _, l := range s.Output {
		if l.Tone == tone {
			out = append(out, l.Text)
		}
	}
	return out
}

type fakeJournal struct {
	entries []string
	records []JourneyRecord
	err     error
}

var _ Journal = (*fakeJournal)(nil)

func (f *fakeJournal) Record(_ context.Context, _ uuid.UUID, entry string) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeJournal) Finish(_ context.Context, _ uuid.UUID, record JourneyRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

type fakeMatcher struct {
	token      string
	score      float64
	name       string
	nameScore  float64
	err        error
	classified int
}

func (f *fakeMatcher) Classify(string) (string, float64, error) {
	f.classified++
	return f.token, f.score, f.err
}

func (f *fakeMatcher) ResolveCharacter(string) (string, float64, error) {
	return f.name, f.nameScore, nil
}

func (f *fakeMatcher) ResolveItem(string) (string, float64, error) {
	return f.name, f.nameScore, nil
}
