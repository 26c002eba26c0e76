package scenario

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/the-line/pkg/actor"
)

// ServiceCosts are the prices settlements charge.
var ServiceCosts = map[Service]int{
	ServiceFood:    20,
	ServiceShelter: 30,
	ServiceMedical: 50,
}

// ProvideService sells a settlement service to c.
func (l *Location) ProvideService(name string, c *actor.Character) string {
	service := Service(strings.ToLower(strings.TrimSpace(name)))
	if !l.HasService(service) {
		return fmt.Sprintf("No %s service available here.", service)
	}

	cost := ServiceCosts[service]
	if !c.HasMoney() || c.Money() < cost {
		return fmt.Sprintf("You don't have enough money for %s service (needs $%d).", service, cost)
	}

	switch service {
	case ServiceFood:
		if c.HasFood() {
			c.Spend(cost)
			c.AdjustFood(40)
			return fmt.Sprintf("%s pays $%d and receives a meal from the local community.", c.Name, cost)
		}
	case ServiceShelter:
		c.Spend(cost)
		c.AdjustHealth(20)
		return fmt.Sprintf("%s pays $%d for shelter and rests safely.", c.Name, cost)
	case ServiceMedical:
		c.Spend(cost)
		c.AdjustHealth(35)
		return fmt.Sprintf("%s pays $%d and receives medical care.", c.Name, cost)
	}
	return fmt.Sprintf("Used %s service.", service)
}
