package actor

import (
	"fmt"
	"strings"
)

// healthPenalties are the health losses applied by ConsumeResources.
type healthPenalties struct {
	noWater  int
	lowWater int
	noFood   int
	lowFood  int
}

var (
	migrantPenalties = healthPenalties{noWater: 20, lowWater: 5, noFood: 8, lowFood: 3}
	patrolPenalties  = healthPenalties{noWater: 5, lowWater: 2, noFood: 4, lowFood: 1}
)

// lowSupplyThreshold is the level below which thirst and hunger set in.
const lowSupplyThreshold = 20

// ConsumeResources drains water and food, then applies threshold-based
// health loss. The returned status names every matched condition.
func (c *Character) ConsumeResources(water, food int) string {
	if c.Supplies == nil {
		return fmt.Sprintf("%s is doing well.", c.Name)
	}

	c.Supplies.Water = max(0, c.Supplies.Water-water)
	c.Supplies.Food = max(0, c.Supplies.Food-food)

	p := migrantPenalties
	if c.Kind == KindBorderPatrol {
		p = patrolPenalties
	}

	var loss int
	var status []string
	switch {
	case c.Supplies.Water <= 0:
		loss += p.noWater
		status = append(status, "severely dehydrated")
	case c.Supplies.Water < lowSupplyThreshold:
		loss += p.lowWater
		status = append(status, "thirsty")
	}
	switch {
	case c.Supplies.Food <= 0:
		loss += p.noFood
		status = append(status, "starving")
	case c.Supplies.Food < lowSupplyThreshold:
		loss += p.lowFood
		status = append(status, "hungry")
	}
	c.AdjustHealth(-loss)

	if len(status) == 0 {
		return fmt.Sprintf("%s is doing well.", c.Name)
	}
	return fmt.Sprintf("%s is %s.", c.Name, strings.Join(status, " and "))
}

// ChangeHope adjusts hope. The message follows the sign of amount, not
// the clamped result. Characters without hope are left unchanged.
func (c *Character) ChangeHope(amount int) string {
	c.AdjustHope(amount)
	switch {
	case amount > 0:
		return fmt.Sprintf("%s feels more hopeful.", c.Name)
	case amount < 0:
		return fmt.Sprintf("%s feels more discouraged.", c.Name)
	default:
		return fmt.Sprintf("%s's resolve remains unchanged.", c.Name)
	}
}
