package scenario

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"slices"

	"github.com/jwebster45206/the-line/pkg/actor"
)

//go:embed data/*.json
var dataFS embed.FS

// DefaultFile is the embedded world.
const DefaultFile = "data/the_line.json"

// DefaultTurnLimit applies when a scenario does not set one.
const DefaultTurnLimit = 30

// Scenario is the static data a World is built from.
type Scenario struct {
	Name              string                    `json:"name"`
	Story             string                    `json:"story"`
	OpeningLocation   string                    `json:"opening_location"`
	SuccessLocation   string                    `json:"success_location"`
	DetentionLocation string                    `json:"detention_location"`
	TurnLimit         int                       `json:"turn_limit,omitempty"`
	Locations         []LocationSpec            `json:"locations"`
	NPCs              []NPCSpec                 `json:"npcs,omitempty"`
	Items             []string                  `json:"items"`
	Events            []Event                   `json:"events,omitempty"`
	Players           map[string]PlayerDefaults `json:"players"`
}

// LocationSpec describes one location. Exits are ordered.
type LocationSpec struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Kind            LocationKind `json:"kind"`
	DangerLevel     int          `json:"danger_level"`
	WaterScarcity   int          `json:"water_scarcity,omitempty"`
	PatrolIntensity int          `json:"patrol_intensity,omitempty"`
	Population      int          `json:"population,omitempty"`
	Services        []Service    `json:"services,omitempty"`
	Items           []string     `json:"items,omitempty"`
	Exits           []ExitSpec   `json:"exits,omitempty"`
}

// ExitSpec is a directed connection to another location ID.
type ExitSpec struct {
	Direction string `json:"direction"`
	To        string `json:"to"`
}

// NPCSpec describes a non-player character and where it starts.
type NPCSpec struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Kind           actor.Kind        `json:"kind"`
	Health         int               `json:"health"`
	Location       string            `json:"location"`
	Inventory      []string          `json:"inventory,omitempty"`
	Origin         string            `json:"origin,omitempty"`
	Motivation     string            `json:"motivation,omitempty"`
	Water          *int              `json:"water,omitempty"`
	Food           *int              `json:"food,omitempty"`
	YearsOfService int               `json:"years_of_service,omitempty"`
	FamilyTies     []actor.FamilyTie `json:"family_ties,omitempty"`
}

// Load strictly decodes a scenario; unknown fields are an error.
func Load(r io.Reader) (*Scenario, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return &s, nil
}

// LoadFile reads a scenario from disk.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

// Default loads the embedded world.
func Default() (*Scenario, error) {
	data, err := dataFS.ReadFile(DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scenario: %w", err)
	}
	return Load(bytes.NewReader(data))
}

var (
	idPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

	directions     = []string{"north", "south", "east", "west"}
	locationKinds  = []LocationKind{LocationBase, LocationDesert, LocationBorder, LocationSettlement}
	eventKinds     = []EventKind{EventBase, EventEncounter, EventResource, EventMoral}
	resourceKinds  = []string{ResourceWater, ResourceFood, ResourceHealth, ResourceItem}
	encounterTypes = []string{EncounterMigrant, EncounterPatrol, EncounterLocal}
	npcKinds       = []actor.Kind{actor.KindGeneric, actor.KindMigrant, actor.KindBorderPatrol}
)

// IsValidID reports whether id is lowercase snake_case.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Validate checks references and value ranges and reports every problem
// found, joined.
func (s *Scenario) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	ids := make(map[string]bool, len(s.Locations))
	for _, l := range s.Locations {
		if !IsValidID(l.ID) {
			add("location ID %q must be lowercase snake_case", l.ID)
		}
		if ids[l.ID] {
			add("duplicate location ID %q", l.ID)
		}
		ids[l.ID] = true
	}

	for _, l := range s.Locations {
		if !slices.Contains(locationKinds, l.Kind) {
			add("location %s: unknown kind %q", l.ID, l.Kind)
		}
		if l.Name == "" {
			add("location %s: name is required", l.ID)
		}
		for _, r := range []struct {
			field string
			v     int
		}{
			{"danger_level", l.DangerLevel},
			{"water_scarcity", l.WaterScarcity},
			{"patrol_intensity", l.PatrolIntensity},
		} {
			if r.v < 0 || r.v > 10 {
				add("location %s: %s %d not in 0-10", l.ID, r.field, r.v)
			}
		}
		for _, svc := range l.Services {
			if _, ok := ServiceCosts[svc]; !ok {
				add("location %s: unknown service %q", l.ID, svc)
			}
		}
		if len(l.Services) > 0 && l.Kind != LocationSettlement {
			add("location %s: only settlements offer services", l.ID)
		}
		for _, e := range l.Exits {
			if !slices.Contains(directions, e.Direction) {
				add("location %s: unknown direction %q", l.ID, e.Direction)
			}
			if !ids[e.To] {
				add("location %s: exit %s leads to unknown location %q", l.ID, e.Direction, e.To)
			}
		}
	}

	for _, r := range []struct {
		field string
		id    string
	}{
		{"opening_location", s.OpeningLocation},
		{"success_location", s.SuccessLocation},
		{"detention_location", s.DetentionLocation},
	} {
		if !ids[r.id] {
			add("%s %q is not a known location", r.field, r.id)
		}
	}

	for _, n := range s.NPCs {
		if n.Name == "" {
			add("npc with empty name")
		}
		if !slices.Contains(npcKinds, n.Kind) {
			add("npc %s: unknown kind %q", n.Name, n.Kind)
		}
		if !ids[n.Location] {
			add("npc %s: unknown location %q", n.Name, n.Location)
		}
		if n.Health < 1 || n.Health > actor.MaxStat {
			add("npc %s: health %d not in 1-100", n.Name, n.Health)
		}
	}

	for i := range s.Events {
		e := &s.Events[i]
		if e.Name == "" {
			add("event %d: name is required", i)
		}
		if !slices.Contains(eventKinds, e.Kind) {
			add("event %s: unknown kind %q", e.Name, e.Kind)
		}
		for _, k := range e.LocationKinds {
			if !slices.Contains(locationKinds, k) {
				add("event %s: unknown location kind %q", e.Name, k)
			}
		}
		switch e.Kind {
		case EventEncounter:
			if !slices.Contains(encounterTypes, e.EncounterType) {
				add("event %s: unknown encounter type %q", e.Name, e.EncounterType)
			}
		case EventResource:
			if !slices.Contains(resourceKinds, e.Resource) {
				add("event %s: unknown resource %q", e.Name, e.Resource)
			}
			if e.Amount == 0 {
				add("event %s: resource amount must be non-zero", e.Name)
			}
		case EventMoral:
			if len(e.Choices) == 0 {
				add("event %s: moral events need choices", e.Name)
			}
			if len(e.Choices) != len(e.Consequences) {
				add("event %s: %d choices but %d consequences", e.Name, len(e.Choices), len(e.Consequences))
			}
		}
	}

	for _, role := range slices.Sorted(maps.Keys(s.Players)) {
		if !slices.Contains([]actor.Kind{actor.KindMigrant, actor.KindBorderPatrol}, actor.Kind(role)) {
			add("players: unknown role %q", role)
		}
	}
	if len(s.Items) == 0 {
		add("items: the item pool is empty")
	}

	return errors.Join(errs...)
}

// Build validates the scenario and assembles a World with NPCs placed
// and events attached.
func Build(s *Scenario) (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}

	w := NewWorld(s.Name)
	w.Start = s.OpeningLocation
	w.SuccessLocation = s.SuccessLocation
	w.DetentionLocation = s.DetentionLocation
	w.TurnLimit = s.TurnLimit
	if w.TurnLimit <= 0 {
		w.TurnLimit = DefaultTurnLimit
	}
	w.Items = slices.Clone(s.Items)
	for role, d := range s.Players {
		w.Players[actor.Kind(role)] = d
	}

	for _, spec := range s.Locations {
		var l *Location
		switch spec.Kind {
		case LocationDesert:
			l = NewDesert(spec.ID, spec.Name, spec.Description, spec.WaterScarcity, spec.DangerLevel)
		case LocationBorder:
			l = NewBorder(spec.ID, spec.Name, spec.Description, spec.PatrolIntensity, spec.DangerLevel)
		case LocationSettlement:
			l = NewSettlement(spec.ID, spec.Name, spec.Description, spec.Population, spec.DangerLevel, spec.Services...)
		default:
			l = NewLocation(spec.ID, spec.Name, spec.Description, spec.DangerLevel)
		}
		for _, item := range spec.Items {
			l.AddItem(item)
		}
		w.AddLocation(l)
	}

	for _, spec := range s.Locations {
		from := w.locations[spec.ID]
		for _, e := range spec.Exits {
			w.Connect(from, e.Direction, w.locations[e.To])
		}
	}

	for _, n := range s.NPCs {
		c := newNPC(n)
		w.Place(c, w.locations[n.Location])
	}

	for i := range s.Events {
		e := s.Events[i]
		w.Events = append(w.Events, &e)
	}
	w.AttachEvents()

	return w, nil
}

func newNPC(n NPCSpec) *actor.Character {
	var c *actor.Character
	switch n.Kind {
	case actor.KindMigrant:
		c = actor.NewMigrant(n.Name, n.Description, n.Origin, n.Motivation, n.Health)
		for _, tie := range n.FamilyTies {
			c.AddFamilyTie(tie.Name, tie.Relationship)
		}
	case actor.KindBorderPatrol:
		c = actor.NewBorderPatrol(n.Name, n.Description, n.YearsOfService, n.Health)
	default:
		c = actor.NewGeneric(n.Name, n.Description, n.Health)
	}
	if n.Water != nil {
		c.AdjustWater(*n.Water - c.Water())
	}
	if n.Food != nil {
		c.AdjustFood(*n.Food - c.Food())
	}
	for _, item := range n.Inventory {
		c.AddItem(item)
	}
	return c
}

// DefaultWorld builds the embedded world.
func DefaultWorld() (*World, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return Build(s)
}
