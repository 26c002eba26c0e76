package actor

// Capability queries. Callers apply an effect only when the character
// exposes the attribute it touches.

func (c *Character) HasWater() bool        { return c.Supplies != nil }
func (c *Character) HasFood() bool         { return c.Supplies != nil }
func (c *Character) HasMoney() bool        { return c.Supplies != nil }
func (c *Character) HasHope() bool         { return c.Migrant != nil }
func (c *Character) HasMoralCompass() bool { return c.Patrol != nil }
func (c *Character) HasStress() bool       { return c.Patrol != nil }

// Water returns the water level, or 0 when the character carries none.
func (c *Character) Water() int {
	if c.Supplies == nil {
		return 0
	}
	return c.Supplies.Water
}

func (c *Character) Food() int {
	if c.Supplies == nil {
		return 0
	}
	return c.Supplies.Food
}

func (c *Character) Money() int {
	if c.Supplies == nil {
		return 0
	}
	return c.Supplies.Money
}

func (c *Character) Hope() int {
	if c.Migrant == nil {
		return 0
	}
	return c.Migrant.Hope
}

func (c *Character) MoralCompass() int {
	if c.Patrol == nil {
		return 0
	}
	return c.Patrol.MoralCompass
}

func (c *Character) Stress() int {
	if c.Patrol == nil {
		return 0
	}
	return c.Patrol.Stress
}

// AdjustHealth applies delta and clamps into [0,100]. Every character
// has health, so it never fails.
func (c *Character) AdjustHealth(delta int) {
	c.Health = clamp(c.Health + delta)
}

// The Adjust* methods below clamp into [0,100] and report false,
// leaving the character untouched, when the attribute is absent.

func (c *Character) AdjustWater(delta int) bool {
	if c.Supplies == nil {
		return false
	}
	c.Supplies.Water = clamp(c.Supplies.Water + delta)
	return true
}

func (c *Character) AdjustFood(delta int) bool {
	if c.Supplies == nil {
		return false
	}
	c.Supplies.Food = clamp(c.Supplies.Food + delta)
	return true
}

func (c *Character) AdjustHope(delta int) bool {
	if c.Migrant == nil {
		return false
	}
	c.Migrant.Hope = clamp(c.Migrant.Hope + delta)
	return true
}

func (c *Character) AdjustMoralCompass(delta int) bool {
	if c.Patrol == nil {
		return false
	}
	c.Patrol.MoralCompass = clamp(c.Patrol.MoralCompass + delta)
	return true
}

func (c *Character) AdjustStress(delta int) bool {
	if c.Patrol == nil {
		return false
	}
	c.Patrol.Stress = clamp(c.Patrol.Stress + delta)
	return true
}

// Spend deducts money if the character can afford it.
func (c *Character) Spend(amount int) bool {
	if c.Supplies == nil || c.Supplies.Money < amount {
		return false
	}
	c.Supplies.Money -= amount
	return true
}
