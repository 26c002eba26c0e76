package scenario

import (
	"slices"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
)

// LocationKind discriminates the location variants.
type LocationKind string

const (
	LocationBase       LocationKind = "base"
	LocationDesert     LocationKind = "desert"
	LocationBorder     LocationKind = "border"
	LocationSettlement LocationKind = "settlement"
)

// Service is something a settlement can sell.
type Service string

const (
	ServiceFood    Service = "food"
	ServiceShelter Service = "shelter"
	ServiceMedical Service = "medical"
)

// Exit is a directed edge of the world graph.
type Exit struct {
	Direction string
	Target    *Location
}

// Location is a node in the world graph. Variant fields are only
// meaningful for their Kind: WaterScarcity for deserts, PatrolIntensity
// for borders, Population and Services for settlements.
type Location struct {
	ID          string
	Name        string
	Description string
	Kind        LocationKind
	DangerLevel int
	Visited     bool

	WaterScarcity   int
	PatrolIntensity int
	Population      int
	Services        []Service

	exits      []Exit
	characters []*actor.Character
	items      []string
	events     []*Event
}

// NewLocation creates a base location.
func NewLocation(id, name, description string, danger int) *Location {
	return &Location{
		ID:          id,
		Name:        name,
		Description: description,
		Kind:        LocationBase,
		DangerLevel: clampLevel(danger),
	}
}

func NewDesert(id, name, description string, waterScarcity, danger int) *Location {
	l := NewLocation(id, name, description, danger)
	l.Kind = LocationDesert
	l.WaterScarcity = clampLevel(waterScarcity)
	return l
}

func NewBorder(id, name, description string, patrolIntensity, danger int) *Location {
	l := NewLocation(id, name, description, danger)
	l.Kind = LocationBorder
	l.PatrolIntensity = clampLevel(patrolIntensity)
	return l
}

func NewSettlement(id, name, description string, population, danger int, services ...Service) *Location {
	l := NewLocation(id, name, description, danger)
	l.Kind = LocationSettlement
	l.Population = population
	for _, s := range services {
		l.AddService(s)
	}
	return l
}

func clampLevel(v int) int {
	return max(0, min(10, v))
}

// Connect adds or replaces the exit in direction. A replaced exit keeps
// its position in the listing order.
func (l *Location) Connect(direction string, target *Location) {
	for i := range l.exits {
		if l.exits[i].Direction == direction {
			l.exits[i].Target = target
			return
		}
	}
	l.exits = append(l.exits, Exit{Direction: direction, Target: target})
}

// Exit returns the location reached by going direction.
func (l *Location) Exit(direction string) (*Location, bool) {
	for _, e := range l.exits {
		if e.Direction == direction {
			return e.Target, true
		}
	}
	return nil, false
}

// Exits lists connections in the order they were added.
func (l *Location) Exits() []Exit {
	return slices.Clone(l.exits)
}

func (l *Location) Characters() []*actor.Character {
	return slices.Clone(l.characters)
}

func (l *Location) addCharacter(c *actor.Character) {
	if !slices.Contains(l.characters, c) {
		l.characters = append(l.characters, c)
	}
}

func (l *Location) removeCharacter(c *actor.Character) {
	if i := slices.Index(l.characters, c); i >= 0 {
		l.characters = slices.Delete(l.characters, i, i+1)
	}
}

// FindCharacter returns the first character other than exclude whose
// name matches target.
func (l *Location) FindCharacter(target string, exclude *actor.Character) (*actor.Character, bool) {
	for _, c := range l.characters {
		if c != exclude && actor.MatchesName(c.Name, target) {
			return c, true
		}
	}
	return nil, false
}

func (l *Location) Items() []string {
	return slices.Clone(l.items)
}

func (l *Location) AddItem(item string) {
	l.items = append(l.items, item)
}

// RemoveItem removes one occurrence of item. It reports false and
// changes nothing when the item is absent.
func (l *Location) RemoveItem(item string) bool {
	i := slices.Index(l.items, item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// FindItem returns the first item on the ground matching target.
func (l *Location) FindItem(target string) (string, bool) {
	for _, item := range l.items {
		if actor.MatchesName(item, target) {
			return item, true
		}
	}
	return "", false
}

// AddEvent attaches a shared event from the pool.
func (l *Location) AddEvent(e *Event) {
	if !slices.Contains(l.events, e) {
		l.events = append(l.events, e)
	}
}

func (l *Location) Events() []*Event {
	return slices.Clone(l.events)
}

// RandomEvent picks uniformly among the attached events.
func (l *Location) RandomEvent(src chance.Source) (*Event, bool) {
	return chance.Pick(src, l.events)
}

func (l *Location) AddService(s Service) {
	if !slices.Contains(l.Services, s) {
		l.Services = append(l.Services, s)
	}
}

func (l *Location) HasService(s Service) bool {
	return slices.Contains(l.Services, s)
}

// EncounterChance is the percent chance of meeting a patrol at a border.
func (l *Location) EncounterChance() int {
	if l.Kind != LocationBorder {
		return 0
	}
	return l.PatrolIntensity * 10
}
