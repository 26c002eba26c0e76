package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
)

// EventKind discriminates the event variants.
type EventKind string

const (
	EventBase      EventKind = "base"
	EventEncounter EventKind = "encounter"
	EventResource  EventKind = "resource"
	EventMoral     EventKind = "moral"
)

// Encounter types.
const (
	EncounterMigrant = "migrant"
	EncounterPatrol  = "patrol"
	EncounterLocal   = "local"
)

// Resource kinds.
const (
	ResourceWater  = "water"
	ResourceFood   = "food"
	ResourceHealth = "health"
	ResourceItem   = "item"
)

// Category tags an outcome for journey bookkeeping.
type Category string

const (
	CategoryAmbient     Category = "ambient"
	CategoryEncounter   Category = "encounter"
	CategoryMoralChoice Category = "moral_choice"
)

var (
	ErrInvalidChoice = errors.New("choice out of range")
	ErrNotANumber    = errors.New("choice is not a number")
	ErrNotMoral      = errors.New("event has no choices")
)

// Consequence is the effect of one moral choice.
type Consequence struct {
	Description string          `json:"description"`
	HopeImpact  int             `json:"hope_impact,omitempty"`
	MoralImpact int             `json:"moral_impact,omitempty"`
	Flags       map[string]bool `json:"flags,omitempty"`
}

// Event is a triggerable narrative effect. The fields used depend on
// Kind: EncounterType for encounters, Resource and Amount for resource
// events, Choices and the parallel Consequences for moral events.
type Event struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Kind          EventKind      `json:"kind"`
	LocationKinds []LocationKind `json:"location_kinds,omitempty"`

	EncounterType string `json:"encounter_type,omitempty"`

	Resource string `json:"resource,omitempty"`
	Amount   int    `json:"amount,omitempty"`

	Choices      []string      `json:"choices,omitempty"`
	Consequences []Consequence `json:"consequences,omitempty"`
}

// ChoiceRequest asks the player to pick one of Choices (1-based).
type ChoiceRequest struct {
	Prompt  string
	Choices []string
}

// Outcome is the result of executing or resolving an event. A non-nil
// Choice means the event is waiting on Resolve.
type Outcome struct {
	Event    *Event
	Text     string
	Category Category
	Choice   *ChoiceRequest
}

// Pending reports whether the outcome still needs a choice.
func (o Outcome) Pending() bool {
	return o.Choice != nil
}

// CanOccur reports whether the event may fire at l. An empty tag set
// means anywhere.
func (e *Event) CanOccur(l *Location) bool {
	return len(e.LocationKinds) == 0 || slices.Contains(e.LocationKinds, l.Kind)
}

// Category returns the bookkeeping tag for this event.
func (e *Event) Category() Category {
	switch e.Kind {
	case EventMoral:
		return CategoryMoralChoice
	case EventEncounter:
		return CategoryEncounter
	}
	return CategoryAmbient
}

// Execute applies the event to c. itemPool supplies items found by item
// resource events. Moral events apply nothing here; they return a
// ChoiceRequest to be answered through Resolve.
func (e *Event) Execute(c *actor.Character, itemPool []string, src chance.Source) Outcome {
	out := Outcome{Event: e, Text: e.Description, Category: e.Category()}

	switch e.Kind {
	case EventEncounter:
		out.Text += e.encounter(c)
	case EventResource:
		out.Text += e.resource(c, itemPool, src)
	case EventMoral:
		out.Choice = &ChoiceRequest{
			Prompt:  e.Description,
			Choices: slices.Clone(e.Choices),
		}
	}
	return out
}

func (e *Event) encounter(c *actor.Character) string {
	switch e.EncounterType {
	case EncounterPatrol:
		if c.AdjustHope(-20) {
			return fmt.Sprintf("\n%s's hope diminishes.", c.Name)
		}
	case EncounterMigrant:
		if c.AdjustStress(10) {
			return fmt.Sprintf("\n%s's stress increases.", c.Name)
		}
	case EncounterLocal:
		if c.AdjustHope(10) {
			return fmt.Sprintf("\n%s feels more hopeful.", c.Name)
		}
	}
	return ""
}

func (e *Event) resource(c *actor.Character, itemPool []string, src chance.Source) string {
	switch e.Resource {
	case ResourceWater:
		if c.AdjustWater(e.Amount) {
			if e.Amount > 0 {
				return fmt.Sprintf("\n%s found water.", c.Name)
			}
			return fmt.Sprintf("\n%s lost water.", c.Name)
		}
	case ResourceFood:
		if c.AdjustFood(e.Amount) {
			if e.Amount > 0 {
				return fmt.Sprintf("\n%s found food.", c.Name)
			}
			return fmt.Sprintf("\n%s lost food.", c.Name)
		}
	case ResourceHealth:
		c.AdjustHealth(e.Amount)
		if e.Amount > 0 {
			return fmt.Sprintf("\n%s's health improved.", c.Name)
		}
		return fmt.Sprintf("\n%s's health worsened.", c.Name)
	case ResourceItem:
		switch {
		case e.Amount > 0:
			if item, ok := chance.Pick(src, itemPool); ok {
				c.AddItem(item)
				return fmt.Sprintf("\n%s found %s.", c.Name, item)
			}
		case e.Amount < 0:
			if item, ok := chance.Pick(src, c.Inventory); ok {
				c.RemoveItem(item)
				return fmt.Sprintf("\n%s lost %s.", c.Name, item)
			}
		}
	}
	return ""
}

// Resolve applies the consequence of the 1-based choice to c: moral
// impact to the moral compass and hope impact to hope where present,
// and each flag merged into the story flags.
func (e *Event) Resolve(c *actor.Character, choice int) (Outcome, error) {
	if e.Kind != EventMoral || len(e.Choices) == 0 {
		return Outcome{}, ErrNotMoral
	}
	if choice < 1 || choice > len(e.Choices) || choice > len(e.Consequences) {
		return Outcome{}, fmt.Errorf("%w: %d not in 1-%d", ErrInvalidChoice, choice, len(e.Choices))
	}

	cons := e.Consequences[choice-1]
	c.AdjustMoralCompass(cons.MoralImpact)
	c.AdjustHope(cons.HopeImpact)
	for flag, value := range cons.Flags {
		c.SetFlag(flag, value)
	}

	return Outcome{
		Event:    e,
		Text:     fmt.Sprintf("You chose: %s\n%s", e.Choices[choice-1], cons.Description),
		Category: CategoryMoralChoice,
	}, nil
}

// ParseChoice validates raw input against n options and returns the
// 1-based index. Zero, negative and out-of-range values are rejected.
func ParseChoice(input string, n int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	if v < 1 || v > n {
		return 0, ErrInvalidChoice
	}
	return v, nil
}
