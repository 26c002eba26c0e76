package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/narrative"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

const (
	RandomEventChance  = 0.15
	TraumaChance       = 0.05
	ArrivalEventChance = 0.30
	DistancePerMove    = 10
	StressInterval     = 5 // turns between burnout checks for agents
)

// Engine runs the turn loop for one journey. All input and output goes
// through io; all randomness comes from src.
type Engine struct {
	gs      *GameState
	io      prompt.IO
	story   *narrative.Story
	src     chance.Source
	interp  *Interpreter
	logger  *slog.Logger
	journal Journal // Optional archive of key events
	ctx     context.Context

	stressTurn int
}

func NewEngine(gs *GameState, io prompt.IO, story *narrative.Story, src chance.Source, logger *slog.Logger) *Engine {
	return &Engine{
		gs:     gs,
		io:     io,
		story:  story,
		src:    src,
		interp: NewInterpreter(nil, logger),
		logger: logger,
		ctx:    context.Background(),
	}
}

// WithMatcher enables natural-language command matching
// Returns the Engine for method chaining
func (e *Engine) WithMatcher(m Matcher) *Engine {
	e.interp = NewInterpreter(m, e.logger)
	return e
}

// WithJournal sets the archive key events are recorded to
// Returns the Engine for method chaining
func (e *Engine) WithJournal(j Journal) *Engine {
	e.journal = j
	return e
}

// WithContext sets the context for journal operations
// Returns the Engine for method chaining
func (e *Engine) WithContext(ctx context.Context) *Engine {
	e.ctx = ctx
	return e
}

func (e *Engine) State() *GameState {
	return e.gs
}

// Run shows the starting location and plays turns until the journey
// ends, the player quits or input closes. It then shows the summary,
// and the epilogue if the journey reached an ending.
func (e *Engine) Run() error {
	loc := e.gs.Location()
	if loc == nil {
		return fmt.Errorf("player %q is not placed in the world", e.gs.Player.Name)
	}
	e.io.Say(prompt.Narration, loc.Describe(true, e.gs.Player))
	e.io.Say(prompt.Notice, "Type 'help' for available commands.")

	for {
		err := e.Tick()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrGameOver) || errors.Is(err, ErrQuit) || errors.Is(err, prompt.ErrClosed) {
			e.finish()
			return nil
		}
		return err
	}
}

// Tick plays one turn: ambience, resource decay and burnout, ending check, random
// and trauma rolls, then one command. It returns ErrGameOver once the
// journey has ended and ErrQuit when the player confirms quitting.
func (e *Engine) Tick() error {
	gs := e.gs
	if gs.IsEnded {
		return ErrGameOver
	}
	loc := gs.Location()
	if loc == nil {
		return fmt.Errorf("player %q is not placed in the world", gs.Player.Name)
	}

	if msg := loc.Ambience(gs.Player); msg != "" {
		e.io.Say(prompt.Narration, msg)
	}
	if msg, low := e.decay(loc); low {
		e.io.Say(prompt.Warning, msg)
	}
	if msg := e.burnout(); msg != "" {
		e.io.Say(prompt.Narration, msg)
	}
	if gs.CheckGameOver() {
		e.announceEnding()
		return ErrGameOver
	}

	if chance.Roll(e.src, RandomEventChance) {
		before := len(gs.Stats.KeyEvents)
		if text, ok := e.story.TriggerRandomEvent(gs.Stats, gs.Player.Kind); ok {
			e.io.Say(prompt.Notice, text)
			if len(gs.Stats.KeyEvents) > before {
				e.record(gs.Stats.KeyEvents[len(gs.Stats.KeyEvents)-1])
			}
		}
	}
	if chance.Roll(e.src, TraumaChance) {
		if text, ok := e.story.TriggerTraumaEvent(); ok {
			e.io.Say(prompt.Notice, text)
			gs.Stats.Update(narrative.StatTrauma, 1)
			if gs.Player.HasHope() {
				gs.Player.ChangeHope(-10)
			}
			gs.Player.AdjustStress(15)
		}
	}

	line, err := e.readCommand()
	if err != nil {
		return err
	}
	cmd := e.interp.Parse(line)

	if cmd.Action == ActionQuit {
		yes, err := prompt.Confirm(e.io, "Are you sure you want to quit? (y/n): ")
		if err != nil {
			return err
		}
		if yes {
			return ErrQuit
		}
		return nil
	}

	result, err := e.Dispatch(cmd)
	if err != nil {
		return err
	}
	e.io.Say(prompt.Narration, result)

	if gs.CheckGameOver() {
		e.announceEnding()
		return ErrGameOver
	}
	return nil
}

// Dispatch runs a parsed command. Quit is handled by Tick.
func (e *Engine) Dispatch(cmd Command) (string, error) {
	switch cmd.Action {
	case ActionNone:
		return cmd.Reply, nil
	case ActionMove:
		return e.Move(cmd.Target)
	case ActionEncounter:
		return e.Encounter(cmd.Verb, cmd.Target), nil
	}
	return e.Interact(cmd.Action, cmd.Target), nil
}

// Move takes the player along an exit. A missing exit changes nothing.
// On arrival an event may fire; a moral event is resolved through io
// before Move returns, after the arrival report has been shown.
func (e *Engine) Move(direction string) (string, error) {
	gs := e.gs
	if gs.IsEnded {
		return "The game is over.", nil
	}
	from := gs.Location()
	if from == nil {
		return "You are nowhere.", nil
	}
	to, ok := from.Exit(direction)
	if !ok {
		return fmt.Sprintf("You cannot go %s from here.", direction), nil
	}

	gs.World.Place(gs.Player, to)
	to.Visited = true
	gs.Turn++
	gs.Stats.Update(narrative.StatDistance, DistancePerMove)
	e.logger.Debug("Player moved",
		"session_id", gs.ID.String(),
		"from", from.ID,
		"to", to.ID,
		"turn", gs.Turn)

	report := fmt.Sprintf("You travel %s to %s.\n%s", direction, to.Name, to.Describe(true, gs.Player))

	text, shown, err := e.arrival(to, report)
	if err != nil {
		return "", err
	}
	gs.CheckGameOver()

	switch {
	case shown:
		return text, nil
	case text != "":
		return report + "\n\n" + text, nil
	}
	return report, nil
}

// CheckForEvent rolls for an event at the player's location, or fires
// one unconditionally when force is set. It returns "" when none fires.
func (e *Engine) CheckForEvent(force bool) (string, error) {
	if e.gs.IsEnded {
		return "", nil
	}
	loc := e.gs.Location()
	if loc == nil {
		return "", nil
	}
	out, ok := e.executeEvent(loc, force)
	if !ok {
		return "", nil
	}
	return e.settle(out)
}

// arrival fires an arrival event at loc. When the event needs a choice,
// report is shown first and shown is true.
func (e *Engine) arrival(loc *scenario.Location, report string) (text string, shown bool, err error) {
	out, ok := e.executeEvent(loc, false)
	if !ok {
		return "", false, nil
	}
	if out.Pending() {
		e.io.Say(prompt.Narration, report)
		shown = true
	}
	text, err = e.settle(out)
	return text, shown, err
}

func (e *Engine) executeEvent(loc *scenario.Location, force bool) (scenario.Outcome, bool) {
	if !force && !chance.Roll(e.src, ArrivalEventChance) {
		return scenario.Outcome{}, false
	}
	ev, ok := loc.RandomEvent(e.src)
	if !ok {
		return scenario.Outcome{}, false
	}
	return ev.Execute(e.gs.Player, e.gs.World.Items, e.src), true
}

// settle resolves any pending choice and books the outcome's category.
func (e *Engine) settle(out scenario.Outcome) (string, error) {
	if out.Pending() {
		resolved, err := e.choose(out)
		if err != nil {
			return "", err
		}
		out = resolved
	}

	switch out.Category {
	case scenario.CategoryMoralChoice:
		e.gs.Stats.Update(narrative.StatMoralChoices, 1)
	case scenario.CategoryEncounter:
		e.gs.Stats.Update(narrative.StatLives, 1)
		e.logEvent(out.Event.Description)
	}
	return out.Text, nil
}

// choose presents a moral choice and re-prompts until a listed number
// is entered.
func (e *Engine) choose(out scenario.Outcome) (scenario.Outcome, error) {
	req := out.Choice

	var b strings.Builder
	b.WriteString(req.Prompt)
	b.WriteString("\n\nChoices:")
	for i, c := range req.Choices {
		fmt.Fprintf(&b, "\n%d. %s", i+1, c)
	}
	e.io.Say(prompt.Narration, b.String())

	question := fmt.Sprintf("Enter choice (1-%d): ", len(req.Choices))
	for {
		line, err := e.io.ReadLine(question)
		if err != nil {
			return out, err
		}
		n, err := scenario.ParseChoice(line, len(req.Choices))
		switch {
		case errors.Is(err, scenario.ErrNotANumber):
			e.io.Say(prompt.Warning, "Invalid input. Please enter a number.")
		case err != nil:
			e.io.Say(prompt.Warning, "Invalid choice. Please enter a number from the list.")
		default:
			return out.Event.Resolve(e.gs.Player, n)
		}
	}
}

func (e *Engine) readCommand() (string, error) {
	for {
		line, err := e.io.ReadLine("> ")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		e.io.Say(prompt.Notice, emptyCommandReply)
	}
}

// burnout runs an agent's stress check every StressInterval turns, once
// per turn. It returns "" on other turns.
func (e *Engine) burnout() string {
	p := e.gs.Player
	turn := e.gs.Turn
	if !p.IsBorderPatrol() || turn == 0 || turn%StressInterval != 0 || turn == e.stressTurn {
		return ""
	}
	e.stressTurn = turn
	return p.ProcessStress()
}

// decay applies the per-turn resource drain, and the desert's toll on an
// agent's stress. low reports whether the player is now short of water
// or food.
func (e *Engine) decay(loc *scenario.Location) (msg string, low bool) {
	p := e.gs.Player
	var water, food int
	switch {
	case p.IsMigrant():
		water, food = 5, 5
		switch {
		case loc.Kind == scenario.LocationDesert:
			water += loc.WaterScarcity / 2
			food += 2
		case loc.Kind == scenario.LocationSettlement && loc.HasService(scenario.ServiceFood):
			food = max(0, food-3)
		}
	case p.IsBorderPatrol():
		water, food = 3, 3
		if loc.Kind == scenario.LocationDesert {
			water += loc.WaterScarcity / 3
			food++
			p.AdjustStress(scenario.DesertStress)
		}
	default:
		return "", false
	}

	msg = p.ConsumeResources(water, food)
	return msg, p.HasWater() && (p.Water() < 20 || p.Food() < 20)
}

func (e *Engine) announceEnding() {
	gs := e.gs
	e.io.Say(prompt.Ending, gs.EndingMessage())
	e.logger.Info("Journey ended",
		"session_id", gs.ID.String(),
		"ending", string(gs.Ending),
		"turn", gs.Turn)
}

// finish shows the summary and epilogue and closes the journal record.
func (e *Engine) finish() {
	gs := e.gs
	e.io.Say(prompt.Status, e.story.Summary(gs.Stats, gs.Player))
	if gs.IsEnded {
		e.io.Say(prompt.Ending, e.story.Epilogue(string(gs.Ending), gs.Player))
	}

	if e.journal == nil {
		return
	}
	ending := string(gs.Ending)
	if ending == "" {
		ending = "quit"
	}
	record := JourneyRecord{
		Player:   gs.Player.Name,
		Role:     string(gs.Player.Kind),
		Ending:   ending,
		Turns:    gs.Turn,
		Distance: gs.Stats.DistanceTraveled,
	}
	if err := e.journal.Finish(e.ctx, gs.ID, record); err != nil {
		e.logger.Warn("Failed to archive journey",
			"error", err,
			"session_id", gs.ID.String())
	}
}

func (e *Engine) logEvent(text string) {
	if e.gs.Stats.LogEvent(text) {
		e.record(text)
	}
}

func (e *Engine) record(text string) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(e.ctx, e.gs.ID, text); err != nil {
		// Don't fail the turn on journal errors
		e.logger.Warn("Failed to record journey event",
			"error", err,
			"session_id", e.gs.ID.String())
	}
}
