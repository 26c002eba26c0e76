package narrative

import (
	"strconv"
	"strings"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
	"github.com/jwebster45206/the-line/pkg/textfilter"
)

// DefaultYearsOfService is used when the player's answer is not a number.
const DefaultYearsOfService = 5

// CreateCharacter walks the player through choosing a role and naming
// their character. It only fails when the boundary does.
func CreateCharacter(io prompt.IO) (scenario.PlayerInfo, error) {
	var info scenario.PlayerInfo

	io.Say(prompt.Title, "CHARACTER CREATION\n==================")
	io.Say(prompt.Narration, "Choose your role:\n"+
		"1. Migrant           -   Seeking a better life across the border\n"+
		"2. Border Patrol     -   Enforcing the boundary between nations")

	for {
		choice, err := io.ReadLine("Enter your choice (1 or 2): ")
		if err != nil {
			return info, err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			info.Kind = actor.KindMigrant
		case "2":
			info.Kind = actor.KindBorderPatrol
		default:
			io.Say(prompt.Warning, "Invalid choice. Please enter 1 or 2.")
			continue
		}
		break
	}

	name, err := io.ReadLine("Enter your character's name: ")
	for err == nil && strings.TrimSpace(name) == "" {
		name, err = io.ReadLine("Name cannot be empty. Please enter a name: ")
	}
	if err != nil {
		return info, err
	}
	info.Name = textfilter.TitleIfLower(name)

	if info.Kind == actor.KindMigrant {
		origin, err := io.ReadLine("Where are you from? (e.g., 'Central Mexico', 'Guatemala'): ")
		if err != nil {
			return info, err
		}
		motivation, err := io.ReadLine("Why are you making this journey? ")
		if err != nil {
			return info, err
		}
		info.Origin = textfilter.TitleIfLower(origin)
		info.Motivation = strings.TrimSpace(motivation)
		return info, nil
	}

	answer, err := io.ReadLine("How many years have you served in Border Patrol? ")
	if err != nil {
		return info, err
	}
	years, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil || years < 0 {
		years = DefaultYearsOfService
		io.Say(prompt.Notice, "Using default: 5 years")
	}
	info.YearsOfService = years
	return info, nil
}
