package actor

import (
	"fmt"
	"slices"
	"strings"
)

// MatchesName reports whether target names candidate: case-insensitive
// exact, prefix or suffix match.
func MatchesName(candidate, target string) bool {
	c := strings.ToLower(strings.TrimSpace(candidate))
	t := strings.ToLower(strings.TrimSpace(target))
	if t == "" {
		return false
	}
	return c == t || strings.HasPrefix(c, t) || strings.HasSuffix(c, t)
}

// FindItem returns the first inventory item matching target.
func (c *Character) FindItem(target string) (string, bool) {
	for _, item := range c.Inventory {
		if MatchesName(item, target) {
			return item, true
		}
	}
	return "", false
}

// HasItem reports whether the exact item is carried.
func (c *Character) HasItem(item string) bool {
	return slices.Contains(c.Inventory, item)
}

func (c *Character) AddItem(item string) string {
	c.Inventory = append(c.Inventory, item)
	return fmt.Sprintf("%s acquired %s.", c.Name, item)
}

// RemoveItem drops the first exact occurrence of item.
func (c *Character) RemoveItem(item string) string {
	i := slices.Index(c.Inventory, item)
	if i < 0 {
		return fmt.Sprintf("%s doesn't have %s.", c.Name, item)
	}
	c.Inventory = slices.Delete(c.Inventory, i, i+1)
	return fmt.Sprintf("%s no longer has %s.", c.Name, item)
}
