package scenario

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/the-line/pkg/actor"
)

// Describe returns "Name: description". The detailed form adds danger,
// paths, people present (other than viewer), items and variant details.
func (l *Location) Describe(detailed bool, viewer *actor.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", l.Name, l.Description)
	if !detailed {
		return b.String()
	}

	b.WriteString("\nDanger Level: ")
	b.WriteString(dangerBand(l.DangerLevel))

	b.WriteString("\nPaths: ")
	if len(l.exits) == 0 {
		b.WriteString("No obvious paths from here.")
	} else {
		paths := make([]string, 0, len(l.exits))
		for _, e := range l.exits {
			paths = append(paths, fmt.Sprintf("%s to %s", e.Direction, e.Target.Name))
		}
		b.WriteString(strings.Join(paths, ", "))
	}

	b.WriteString("\nPresent: ")
	var names []string
	for _, c := range l.characters {
		if c != viewer {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 {
		b.WriteString("No one else is here.")
	} else {
		b.WriteString(strings.Join(names, ", "))
	}

	b.WriteString("\nItems: ")
	if len(l.items) == 0 {
		b.WriteString("Nothing useful found here.")
	} else {
		b.WriteString(strings.Join(l.items, ", "))
	}

	switch l.Kind {
	case LocationDesert:
		b.WriteString("\nWater: ")
		switch {
		case l.WaterScarcity >= 8:
			b.WriteString("Critically scarce - No water sources visible.")
		case l.WaterScarcity >= 5:
			b.WriteString("Very limited - Might find small amounts if lucky.")
		default:
			b.WriteString("Limited - Some water sources may be found.")
		}
	case LocationBorder:
		b.WriteString("\nPatrol: ")
		switch {
		case l.PatrolIntensity >= 8:
			b.WriteString("Heavy presence - Constant surveillance and patrols.")
		case l.PatrolIntensity >= 5:
			b.WriteString("Moderate presence - Regular patrols pass through.")
		default:
			b.WriteString("Light presence - Occasional patrols in the area.")
		}
		fmt.Fprintf(&b, "\nEncounter Risk: %d%%", l.EncounterChance())
	case LocationSettlement:
		b.WriteString("\nPopulation: ")
		switch {
		case l.Population > 10000:
			b.WriteString("Large community")
		case l.Population > 1000:
			b.WriteString("Medium-sized community")
		case l.Population > 100:
			b.WriteString("Small community")
		default:
			b.WriteString("Tiny settlement")
		}
		b.WriteString("\nServices: ")
		if len(l.Services) == 0 {
			b.WriteString("No services available")
		} else {
			services := make([]string, len(l.Services))
			for i, s := range l.Services {
				services[i] = string(s)
			}
			b.WriteString(strings.Join(services, ", "))
		}
	}
	return b.String()
}

func dangerBand(level int) string {
	switch {
	case level <= 2:
		return "Low - Relatively safe area."
	case level <= 5:
		return "Medium - Exercise caution."
	case level <= 8:
		return "High - Very dangerous area."
	}
	return "Extreme - Life-threatening conditions."
}

// DesertStress is the stress an agent gains for each turn spent in a
// desert. The turn engine applies it with resource decay.
const DesertStress = 5

// Ambience is the passive text shown at the start of a turn. Only
// deserts have any. It never changes c.
func (l *Location) Ambience(c *actor.Character) string {
	if l.Kind != LocationDesert {
		return ""
	}

	var effects []string
	if c.HasWater() {
		switch {
		case c.Water() < 30:
			effects = append(effects, "severely dehydrated")
		case c.Water() < 50:
			effects = append(effects, "feeling thirsty")
		}
	}
	if l.DangerLevel > 5 && c.Health < 50 {
		effects = append(effects, "weakened by the harsh conditions")
	} else if l.DangerLevel > 7 {
		effects = append(effects, "struggling against the extreme heat")
	}
	if c.HasStress() {
		effects = append(effects, "stressed from desert conditions")
	}

	if len(effects) == 0 {
		return fmt.Sprintf("%s endures the challenging desert conditions.", c.Name)
	}
	return fmt.Sprintf("The desert is harsh. %s is %s.", c.Name, strings.Join(effects, " and "))
}
