package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/narrative"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

// Ending is the reason a journey stopped.
type Ending string

const (
	EndingNone     Ending = ""
	EndingDeath    Ending = narrative.ReasonDeath
	EndingSuccess  Ending = narrative.ReasonSuccess
	EndingDetained Ending = narrative.ReasonDetained
	EndingTimeout  Ending = narrative.ReasonTimeout
)

var (
	// ErrQuit is returned by Tick when the player confirms quitting.
	ErrQuit = errors.New("player quit")
	// ErrGameOver is returned by Tick once the journey has ended.
	ErrGameOver = errors.New("game over")
)

// GameState is the current state of one journey.
type GameState struct {
	ID      uuid.UUID        `json:"id"` // Unique ID per session
	World   *scenario.World  `json:"-"`
	Player  *actor.Character `json:"player"`
	Stats   *narrative.Stats `json:"stats"`
	Turn    int              `json:"turn"`
	Ending  Ending           `json:"ending,omitempty"`
	IsEnded bool             `json:"is_ended"`
}

func NewGameState(world *scenario.World, player *actor.Character) *GameState {
	return &GameState{
		ID:     uuid.New(),
		World:  world,
		Player: player,
		Stats:  narrative.NewStats(),
	}
}

// Location is where the player currently stands, or nil when the
// player has not been placed.
func (gs *GameState) Location() *scenario.Location {
	l, ok := gs.World.LocationOf(gs.Player)
	if !ok {
		return nil
	}
	return l
}

// TurnLimit is the world's limit, or the default when unset.
func (gs *GameState) TurnLimit() int {
	if gs.World.TurnLimit > 0 {
		return gs.World.TurnLimit
	}
	return scenario.DefaultTurnLimit
}

// CheckGameOver evaluates the ending conditions in priority order and
// records the first that holds. Once ended, the state never changes.
func (gs *GameState) CheckGameOver() bool {
	if gs.IsEnded {
		return true
	}

	p := gs.Player
	loc := gs.Location()
	switch {
	case p.Health <= 0:
		gs.Ending = EndingDeath
	case p.HasWater() && p.Water() <= 0:
		gs.Ending = EndingDeath
	case loc != nil && loc.ID == gs.World.SuccessLocation:
		gs.Ending = EndingSuccess
	case loc != nil && loc.ID == gs.World.DetentionLocation && p.IsMigrant():
		gs.Ending = EndingDetained
	case gs.Turn >= gs.TurnLimit():
		gs.Ending = EndingTimeout
	default:
		return false
	}
	gs.IsEnded = true
	return true
}

// EndingMessage is the line shown the moment the journey ends.
func (gs *GameState) EndingMessage() string {
	if !gs.IsEnded {
		return "The journey continues..."
	}
	switch gs.Ending {
	case EndingDeath:
		return "Your journey has come to a tragic end. The border crossing claimed another life."
	case EndingSuccess:
		if loc := gs.Location(); loc != nil {
			return fmt.Sprintf("You've successfully reached %s. While challenges remain, you've completed the most dangerous part of your journey.", loc.Name)
		}
	case EndingDetained:
		return "You've been detained by Border Patrol. You'll be processed and your fate now lies within the immigration system."
	case EndingTimeout:
		return "Your journey has taken too long. Resources depleted, you can go no further."
	}
	return "Your journey has ended."
}

// StatusReport lists the player's vital signs and inventory.
func (gs *GameState) StatusReport() string {
	p := gs.Player
	loc := gs.Location()
	if loc == nil {
		return "Game not properly initialized."
	}

	lines := []string{
		fmt.Sprintf("Turn: %d", gs.Turn),
		fmt.Sprintf("Location: %s", loc.Name),
		fmt.Sprintf("Health: %d", p.Health),
	}
	if p.HasWater() {
		lines = append(lines, fmt.Sprintf("Water: %d", p.Water()))
	}
	if p.HasFood() {
		lines = append(lines, fmt.Sprintf("Food: %d", p.Food()))
	}
	if p.HasMoney() {
		lines = append(lines, fmt.Sprintf("Money: $%d", p.Money()))
	}
	if p.HasHope() {
		lines = append(lines, fmt.Sprintf("Hope: %d", p.Hope()))
	}
	if p.HasMoralCompass() {
		lines = append(lines, fmt.Sprintf("Moral Compass: %d", p.MoralCompass()))
	}
	if p.HasStress() {
		lines = append(lines, fmt.Sprintf("Stress: %d", p.Stress()))
	}

	inventory := "Empty"
	if len(p.Inventory) > 0 {
		inventory = strings.Join(p.Inventory, ", ")
	}
	lines = append(lines, "Inventory: "+inventory)
	return strings.Join(lines, "\n")
}
