package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/the-line/internal/logger"
	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/intent"
	"github.com/jwebster45206/the-line/pkg/narrative"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
	"github.com/jwebster45206/the-line/pkg/state"
)

// Game holds everything one session needs before the player shows up.
type Game struct {
	World     *scenario.World
	Journal   state.Journal
	Source    chance.Source
	Logger    *slog.Logger
	NoMatcher bool
}

// Play runs one full session over io: title, character creation, intro,
// then the turn loop until an ending, a quit, or closed input.
func (g *Game) Play(ctx context.Context, io prompt.IO) error {
	story := narrative.NewStory(g.Source)

	io.Say(prompt.Title, story.Title())
	io.Say(prompt.Narration, story.Welcome())
	if _, err := io.ReadLine("Press Enter to begin your journey..."); err != nil {
		return ignoreClosed(err)
	}

	info, err := narrative.CreateCharacter(io)
	if err != nil {
		return ignoreClosed(err)
	}

	player, err := g.World.NewPlayer(info)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	gs := state.NewGameState(g.World, player)
	logger.WithSession(g.Logger, gs.ID.String()).Info("Journey started",
		"player", player.Name,
		"role", string(player.Kind),
		"location", gs.Location().ID)

	io.Say(prompt.Narration, story.Intro(gs.Location().Name))

	engine := state.NewEngine(gs, io, story, g.Source, g.Logger).
		WithJournal(g.Journal).
		WithContext(ctx)
	if !g.NoMatcher {
		engine.WithMatcher(g.matcher(player))
	}

	return engine.Run()
}

// matcher knows every character and item name in the world.
func (g *Game) matcher(player *actor.Character) *intent.PhraseMatcher {
	m := intent.NewPhraseMatcher()
	for _, c := range g.World.Characters() {
		if c != player {
			m.AddCharacters(c.Name)
		}
	}
	m.AddItems(g.World.Items...)
	for _, l := range g.World.Locations() {
		m.AddItems(l.Items()...)
	}
	return m
}

func ignoreClosed(err error) error {
	if errors.Is(err, prompt.ErrClosed) {
		return nil
	}
	return err
}
