package actor

import (
	"fmt"

	"github.com/jwebster45206/the-line/pkg/chance"
)

// Actions an agent can take when encountering a migrant.
const (
	ActionDetain = "detain"
	ActionHelp   = "help"
	ActionIgnore = "ignore"
)

// EncounterMigrant resolves an agent's encounter with a migrant. Every
// call counts the encounter and adds 1-10 stress regardless of action.
func (c *Character) EncounterMigrant(m *Character, action string, src chance.Source) string {
	if c.Patrol == nil {
		return fmt.Sprintf("%s encountered %s.", c.Name, m.Name)
	}
	c.Patrol.Encounters++
	c.AdjustStress(chance.Between(src, 1, 10))

	switch action {
	case ActionDetain:
		if m.Health < 30 || (m.HasWater() && m.Water() < 20) {
			c.AdjustMoralCompass(-5)
			return fmt.Sprintf("%s detained %s, who was in poor condition. This weighs on %s's conscience.", c.Name, m.Name, c.Name)
		}
		return fmt.Sprintf("%s detained %s according to protocol.", c.Name, m.Name)
	case ActionHelp:
		c.AdjustMoralCompass(10)
		return fmt.Sprintf("%s chose to help %s, providing water and medical attention before processing.", c.Name, m.Name)
	case ActionIgnore:
		c.AdjustMoralCompass(-15)
		return fmt.Sprintf("%s chose to look the other way, allowing %s to continue undetained.", c.Name, m.Name)
	}
	return fmt.Sprintf("%s encountered %s.", c.Name, m.Name)
}

// ProcessStress reports the effect of accumulated stress. Severe burnout
// costs 5 health.
func (c *Character) ProcessStress() string {
	stress := c.Stress()
	switch {
	case stress > 80:
		c.AdjustHealth(-5)
		return fmt.Sprintf("%s is experiencing severe burnout and health issues from job stress.", c.Name)
	case stress > 60:
		return fmt.Sprintf("%s is having trouble sleeping due to job-related stress.", c.Name)
	case stress > 40:
		return fmt.Sprintf("%s occasionally thinks about work during off hours.", c.Name)
	}
	return fmt.Sprintf("%s is managing work stress well.", c.Name)
}
