package actor

import (
	"fmt"
	"strings"
)

// Kind discriminates the character variants.
type Kind string

const (
	KindGeneric      Kind = "generic"
	KindMigrant      Kind = "migrant"
	KindBorderPatrol Kind = "border_patrol"
)

// Bounds shared by every clamped stat.
const (
	MinStat = 0
	MaxStat = 100
)

// Supplies are carried by migrants and agents alike.
type Supplies struct {
	Water int `json:"water"`
	Food  int `json:"food"`
	Money int `json:"money"`
}

// FamilyTie is someone a migrant left behind or travels for.
type FamilyTie struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

// MigrantProfile holds the migrant-only traits.
type MigrantProfile struct {
	Origin     string      `json:"origin"`
	Motivation string      `json:"motivation"`
	Hope       int         `json:"hope"`
	FamilyTies []FamilyTie `json:"family_ties,omitempty"`
}

// PatrolProfile holds the Border Patrol-only traits.
type PatrolProfile struct {
	YearsOfService int `json:"years_of_service"`
	MoralCompass   int `json:"moral_compass"`
	Stress         int `json:"stress"`
	Encounters     int `json:"encounters"`
}

// Character is a player or non-player character. Variant traits are
// optional; effects are gated on the Has* capability queries rather
// than on Kind.
type Character struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Kind        Kind            `json:"kind"`
	Health      int             `json:"health"`
	Inventory   []string        `json:"inventory,omitempty"`
	Location    string          `json:"location,omitempty"` // key of the current location, "" when nowhere
	StoryFlags  map[string]bool `json:"story_flags,omitempty"`

	Supplies *Supplies       `json:"supplies,omitempty"`
	Migrant  *MigrantProfile `json:"migrant,omitempty"`
	Patrol   *PatrolProfile  `json:"patrol,omitempty"`
}

// NewGeneric creates a character with no variant traits.
func NewGeneric(name, description string, health int) *Character {
	return &Character{
		Name:        name,
		Description: description,
		Kind:        KindGeneric,
		Health:      clamp(health),
		StoryFlags:  make(map[string]bool),
	}
}

// NewMigrant creates a migrant with full supplies and hope.
func NewMigrant(name, description, origin, motivation string, health int) *Character {
	c := NewGeneric(name, description, health)
	c.Kind = KindMigrant
	c.Supplies = &Supplies{Water: 100, Food: 100, Money: 100}
	c.Migrant = &MigrantProfile{
		Origin:     origin,
		Motivation: motivation,
		Hope:       100,
	}
	return c
}

// NewBorderPatrol creates an agent with a neutral moral compass.
func NewBorderPatrol(name, description string, yearsOfService, health int) *Character {
	c := NewGeneric(name, description, health)
	c.Kind = KindBorderPatrol
	c.Supplies = &Supplies{Water: 100, Food: 100, Money: 200}
	c.Patrol = &PatrolProfile{
		YearsOfService: yearsOfService,
		MoralCompass:   50,
	}
	return c
}

func (c *Character) IsMigrant() bool      { return c.Kind == KindMigrant }
func (c *Character) IsBorderPatrol() bool { return c.Kind == KindBorderPatrol }

// Describe returns "Name: description" plus variant details.
func (c *Character) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", c.Name, c.Description)
	if c.Migrant != nil {
		fmt.Fprintf(&b, "\nOrigin: %s\nMotivation: %s", c.Migrant.Origin, c.Migrant.Motivation)
	}
	if c.Patrol != nil {
		fmt.Fprintf(&b, "\nYears of Service: %d", c.Patrol.YearsOfService)
	}
	return b.String()
}

// AddFamilyTie records a family member. It is a no-op for non-migrants.
func (c *Character) AddFamilyTie(name, relationship string) {
	if c.Migrant == nil {
		return
	}
	c.Migrant.FamilyTies = append(c.Migrant.FamilyTies, FamilyTie{Name: name, Relationship: relationship})
}

// SetFlag sets a story flag.
func (c *Character) SetFlag(name string, value bool) {
	if c.StoryFlags == nil {
		c.StoryFlags = make(map[string]bool)
	}
	c.StoryFlags[name] = value
}

// HasFlag reports whether a flag exists and is true.
func (c *Character) HasFlag(name string) bool {
	return c.StoryFlags[name]
}

// IsDead reports the terminal health condition.
func (c *Character) IsDead() bool {
	return c.Health <= 0
}

func clamp(v int) int {
	return max(MinStat, min(MaxStat, v))
}
