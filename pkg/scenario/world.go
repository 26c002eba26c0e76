package scenario

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
)

var ErrUnknownLocation = errors.New("unknown location")

// PlayerDefaults seed a new player character of one role.
type PlayerDefaults struct {
	Description    string   `json:"description"`
	Origin         string   `json:"origin,omitempty"`
	Motivation     string   `json:"motivation,omitempty"`
	YearsOfService int      `json:"years_of_service,omitempty"`
	Inventory      []string `json:"inventory,omitempty"`
}

// World is the directed graph of locations plus the shared item and
// event pools.
type World struct {
	Name              string
	Start             string
	SuccessLocation   string
	DetentionLocation string
	TurnLimit         int

	Items   []string
	Events  []*Event
	Players map[actor.Kind]PlayerDefaults

	locations map[string]*Location
	order     []string
}

// NewWorld returns an empty world.
func NewWorld(name string) *World {
	return &World{
		Name:      name,
		Players:   make(map[actor.Kind]PlayerDefaults),
		locations: make(map[string]*Location),
	}
}

// AddLocation registers l under its ID.
func (w *World) AddLocation(l *Location) {
	if _, exists := w.locations[l.ID]; !exists {
		w.order = append(w.order, l.ID)
	}
	w.locations[l.ID] = l
}

// Location looks up a location by ID.
func (w *World) Location(id string) (*Location, error) {
	l, ok := w.locations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, id)
	}
	return l, nil
}

// Locations returns every location in registration order.
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.locations[id])
	}
	return out
}

// Connect adds a directed edge. The reverse edge is never implied.
func (w *World) Connect(from *Location, direction string, to *Location) {
	from.Connect(direction, to)
}

// Place moves c to l, removing it from wherever it was.
func (w *World) Place(c *actor.Character, l *Location) {
	if c.Location != "" {
		if prev, ok := w.locations[c.Location]; ok {
			prev.removeCharacter(c)
		}
	}
	l.addCharacter(c)
	c.Location = l.ID
}

// LocationOf resolves the character's back-reference.
func (w *World) LocationOf(c *actor.Character) (*Location, bool) {
	l, ok := w.locations[c.Location]
	return l, ok
}

// AttachEvents adds every pooled event to every location where it can occur.
func (w *World) AttachEvents() {
	for _, e := range w.Events {
		for _, l := range w.Locations() {
			if e.CanOccur(l) {
				l.AddEvent(e)
			}
		}
	}
}

// RandomEvent picks one of the events attached to l.
func (w *World) RandomEvent(l *Location, src chance.Source) (*Event, bool) {
	return l.RandomEvent(src)
}

// Characters returns every character placed in the world.
func (w *World) Characters() []*actor.Character {
	var out []*actor.Character
	for _, l := range w.Locations() {
		out = append(out, l.characters...)
	}
	return out
}

// PlayerInfo is what character creation collects.
type PlayerInfo struct {
	Name           string
	Kind           actor.Kind
	Origin         string
	Motivation     string
	YearsOfService int
}

// NewPlayer builds the player from info and the role defaults, and
// places them at the start location.
func (w *World) NewPlayer(info PlayerInfo) (*actor.Character, error) {
	start, err := w.Location(w.Start)
	if err != nil {
		return nil, fmt.Errorf("start location: %w", err)
	}
	defaults := w.Players[info.Kind]

	var p *actor.Character
	switch info.Kind {
	case actor.KindMigrant:
		origin := orDefault(info.Origin, defaults.Origin)
		motivation := orDefault(info.Motivation, defaults.Motivation)
		p = actor.NewMigrant(info.Name, defaults.Description, origin, motivation, 100)
	case actor.KindBorderPatrol:
		p = actor.NewBorderPatrol(info.Name, defaults.Description, info.YearsOfService, 100)
	default:
		return nil, fmt.Errorf("unsupported player kind %q", info.Kind)
	}
	for _, item := range defaults.Inventory {
		p.AddItem(item)
	}
	w.Place(p, start)
	start.Visited = true
	return p, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
