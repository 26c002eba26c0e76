package state

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/narrative"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

var radioIntel = []string{
	"Radio reports suspicious activity to the north.",
	"Dispatch mentions a group crossing near your location.",
	"Another agent reports finding abandoned supplies.",
}

// Interact performs one non-movement action. Only actions that succeed
// (and any service request at a settlement) cost a turn.
func (e *Engine) Interact(action Action, target string) string {
	gs := e.gs
	if gs.IsEnded {
		return "The game is over."
	}
	loc := gs.Location()
	if loc == nil {
		return "You are nowhere."
	}

	switch action {
	case ActionLook:
		return loc.Describe(true, gs.Player) + "\n\n" + e.story.LocationLine(loc)

	case ActionStatus:
		return gs.StatusReport()

	case ActionTalk:
		if target == "" {
			return "Talk to whom? Try 'talk [character name]'."
		}
		npc, ok := loc.FindCharacter(target, gs.Player)
		if !ok {
			return fmt.Sprintf("There is no one named %s here.", target)
		}
		gs.Turn++
		return fmt.Sprintf("%s: '%s'", npc.Name, e.story.Dialogue(npc, gs.Player))

	case ActionTake:
		if target == "" {
			return "Take what? Try 'take [item name]'."
		}
		item, ok := loc.FindItem(target)
		if !ok {
			return fmt.Sprintf("There is no %s here to take.", target)
		}
		loc.RemoveItem(item)
		gs.Player.AddItem(item)
		gs.Turn++
		return fmt.Sprintf("You take the %s.", item)

	case ActionUseService:
		if loc.Kind != scenario.LocationSettlement {
			return "This location doesn't have services."
		}
		gs.Turn++
		return loc.ProvideService(target, gs.Player)

	case ActionUse:
		if target == "" {
			return "Use what? Try 'use [item name]'."
		}
		item, ok := gs.Player.FindItem(target)
		if !ok {
			return fmt.Sprintf("You don't have %s in your inventory.", target)
		}
		gs.Turn++
		return e.useItem(item, loc)

	case ActionHelp:
		return e.helpText()
	}
	return fmt.Sprintf("I don't know how to %s.", action)
}

// useItem applies an item's effect. Items are not consumed.
func (e *Engine) useItem(item string, loc *scenario.Location) string {
	p := e.gs.Player
	name := strings.ToLower(item)

	switch {
	case strings.Contains(name, "water bottle"):
		if p.AdjustWater(30) {
			return "You drink from the water bottle, restoring some hydration."
		}
		return "You drink from the water bottle, but it doesn't seem to affect you much."

	case strings.Contains(name, "canned food"):
		if p.AdjustFood(40) {
			return "You eat the canned food, satisfying your hunger."
		}
		return "You eat the canned food, but it doesn't seem to affect you much."

	case strings.Contains(name, "first aid kit"):
		p.AdjustHealth(25)
		return "You use the first aid kit, treating some wounds."

	case strings.Contains(name, "map"):
		exits := loc.Exits()
		if len(exits) == 0 {
			return "You consult the map. Paths lead to: Unknown."
		}
		paths := make([]string, len(exits))
		for i, x := range exits {
			paths[i] = fmt.Sprintf("%s (%s)", x.Direction, x.Target.Name)
		}
		return "You consult the map. Paths lead to: " + strings.Join(paths, ", ") + "."

	case strings.Contains(name, "flashlight"):
		return "You turn on the flashlight. Its beam cuts through the ambient light."

	case strings.Contains(name, "compass"):
		return "You check the compass. It confirms the cardinal directions."

	case strings.Contains(name, "family photo"):
		if p.HasHope() {
			return "You look at the photo of your family. " + p.ChangeHope(15)
		}
		return "You look at the photo, feeling a mix of emotions."

	case strings.Contains(name, "blanket"):
		return "You wrap the blanket around yourself. It provides some comfort against the elements."

	case strings.Contains(name, "money"):
		return "You count the money. It might be useful if you encounter the right people."

	case strings.Contains(name, "id papers"):
		return "You check your ID papers. Having them feels important, potentially risky."

	case strings.Contains(name, "radio"):
		if !p.IsBorderPatrol() {
			return "You fiddle with the radio, but can't make sense of the transmissions."
		}
		if chance.Roll(e.src, 0.3) {
			intel, _ := chance.Pick(e.src, radioIntel)
			return "You use the radio. " + intel
		}
		return "You use the radio but hear only static."
	}
	return fmt.Sprintf("You use the %s, but nothing special happens.", item)
}

// Encounter resolves an agent's decision about a migrant standing here.
// Detained migrants are taken to the detention location.
func (e *Engine) Encounter(verb, target string) string {
	gs := e.gs
	if gs.IsEnded {
		return "The game is over."
	}
	if !gs.Player.IsBorderPatrol() {
		return "Only Border Patrol agents can do that."
	}
	loc := gs.Location()
	if loc == nil {
		return "You are nowhere."
	}
	m, ok := loc.FindCharacter(target, gs.Player)
	if !ok {
		return fmt.Sprintf("There is no one named %s here.", target)
	}
	if !m.IsMigrant() {
		return fmt.Sprintf("%s is not a migrant.", m.Name)
	}

	gs.Turn++
	result := gs.Player.EncounterMigrant(m, verb, e.src)
	gs.Stats.Update(narrative.StatLives, 1)
	e.logEvent(result)

	if verb == actor.ActionDetain {
		if detention, err := gs.World.Location(gs.World.DetentionLocation); err == nil && detention != loc {
			gs.World.Place(m, detention)
		}
	}
	return result
}

func (e *Engine) helpText() string {
	lines := []string{
		"Available commands:",
		"- look: Examine your surroundings",
		"- status: Check your current status",
		"- talk [character]: Talk to a character",
		"- take [item]: Take an item",
		"- use [item]: Use an item from your inventory",
		"- use service [type]: Access settlement services (food/shelter/medical)",
		"- move [direction]: Move in a direction (north, south, east, west)",
	}
	if e.gs.Player.IsBorderPatrol() {
		lines = append(lines, "- detain/assist/ignore [migrant]: Decide what to do about a migrant you encounter")
	}
	lines = append(lines,
		"- help: Show this help text",
		"- quit: Exit the game",
	)

	if e.interp.HasMatcher() {
		lines = append(lines,
			"",
			"This game understands natural phrasing.",
			"You can use more natural phrases like:",
			"- 'check my health' instead of 'status'",
			"- 'speak with Manuel' instead of 'talk Manuel'",
			"- 'grab the water' instead of 'take water bottle'",
			"- 'drink from my bottle' instead of 'use water bottle'",
			"- 'head north' instead of 'move north'",
		)
	}
	return strings.Join(lines, "\n")
}
