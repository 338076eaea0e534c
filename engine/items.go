package engine

import (
	"context"
	"fmt"
	"strings"
)

var patrolIntel = []string{
	"Radio reports suspicious activity near the border fence.",
	"Dispatch mentions a group of migrants spotted heading north through the desert.",
	"Another agent reports finding abandoned supplies near your position.",
	"You hear chatter about cartel activity increasing in the region.",
	"A helicopter patrol reports movement along the eastern ridge.",
}

var migrantRadioChatter = []string{
	"You pick up border patrol frequencies. They seem to be focused on the western sector today.",
	"The radio catches a weather report - extreme heat warnings for the next few days.",
	"You hear scattered voices discussing patrol schedules. This information could be valuable.",
	"Static fills the frequencies. It's hard to make out anything useful.",
}

// useItem applies the effect of an inventory item. Consumables are
// removed on use; tools and keepsakes stay.
func (e *Engine) useItem(target string) string {
	s := e.Session
	p := s.Player

	if e.Matcher != nil {
		if name, _, ok := e.Matcher.BestItem(context.Background(), target); ok {
			target = name
		}
	}

	item, ok := resolveInventory(p.Inventory, target)
	if !ok {
		return fmt.Sprintf("You don't have %s in your inventory.", target)
	}
	s.AdvanceTurn()

	lower := strings.ToLower(item)
	switch {
	case strings.Contains(lower, "water bottle"):
		old, ok := p.Stat("water")
		if !ok {
			return "You drink from the water bottle, but it doesn't seem to affect you much."
		}
		p.ApplyStat("water", 30)
		now, _ := p.Stat("water")
		change := now - old
		// The last bottle stays as a refillable container.
		if countMatching(p.Inventory, "water bottle") > 1 {
			p.RemoveItem(item)
			return fmt.Sprintf("You drink from the water bottle, restoring %d water. The bottle is now empty.", change)
		}
		return fmt.Sprintf("You drink from the water bottle, restoring %d water. You can refill it if you find a water source.", change)

	case strings.Contains(lower, "canned food"):
		old, ok := p.Stat("food")
		if !ok {
			return "You eat the canned food, but it doesn't seem to affect you much."
		}
		p.ApplyStat("food", 40)
		now, _ := p.Stat("food")
		p.RemoveItem(item)
		return fmt.Sprintf("You eat the canned food, satisfying your hunger (+%d food).", now-old)

	case strings.Contains(lower, "first aid kit"):
		old := p.Health
		p.ApplyStat("health", 25)
		p.RemoveItem(item)
		return fmt.Sprintf("You use the first aid kit, treating some wounds (+%d health).", p.Health-old)

	case strings.Contains(lower, "map"):
		return e.consultMap()

	case strings.Contains(lower, "flashlight"):
		locName := strings.ToLower(s.Location().Name)
		if strings.Contains(locName, "tunnel") || strings.Contains(locName, "cave") {
			return "The flashlight illuminates the darkness, revealing details you couldn't see before."
		}
		if p.Migrant != nil {
			p.ApplyStat("hope", 5)
			return "You turn on the flashlight. Its beam provides some comfort in the uncertainty."
		}
		return "You turn on the flashlight. Its beam cuts through the ambient light."

	case strings.Contains(lower, "compass"):
		if p.Migrant != nil {
			p.ApplyStat("hope", 5)
			return "You check the compass. Knowing your exact orientation gives you confidence in your path."
		}
		return "You check the compass. North is pointing to Tucson, your ultimate destination."

	case strings.Contains(lower, "family photo"):
		if p.Migrant == nil {
			return "You look at the photo, feeling a mix of emotions."
		}
		old := p.Migrant.Hope
		p.ChangeHope(15)
		return fmt.Sprintf("You look at the photo of your family. Their faces remind you of why this journey matters. (+%d hope)",
			p.Migrant.Hope-old)

	case strings.Contains(lower, "blanket"):
		old := p.Health
		p.ApplyStat("health", 10)
		return fmt.Sprintf("You wrap the blanket around yourself, getting some much-needed rest. (+%d health)", p.Health-old)

	case strings.Contains(lower, "money"):
		p.SetFlag("showed_money", true)
		return "You count your money, making sure you have enough for emergencies. Having resources gives you options, but be careful who sees your wealth."

	case strings.Contains(lower, "id papers"):
		p.SetFlag("showed_papers", true)
		if p.Migrant != nil {
			return "You check your ID papers. They might help with asylum claims, but could also reveal your identity to those who would exploit you."
		}
		return "You check your credentials and identification. Your authority comes with responsibility."

	case strings.Contains(lower, "radio"):
		switch {
		case p.Agent != nil:
			if s.RNG.Chance(0.5) {
				intel := patrolIntel[s.RNG.Pick(len(patrolIntel))]
				s.Stats.RecordKeyEvent(intel)
				return fmt.Sprintf("You use the radio. %s", intel)
			}
			return "You check in on the radio but hear only routine chatter and static."
		case p.Migrant != nil:
			chatter := migrantRadioChatter[s.RNG.Pick(len(migrantRadioChatter))]
			return fmt.Sprintf("You carefully listen to the radio. %s", chatter)
		default:
			return "You use the radio but can't make sense of the transmissions."
		}
	}

	return fmt.Sprintf("You use the %s, but nothing special happens.", item)
}

// consultMap lists the paths out of the current location with a risk
// band per destination.
func (e *Engine) consultMap() string {
	s := e.Session
	loc := s.Location()

	var paths []string
	for _, dir := range sortedKeys(loc.Connections) {
		dest := s.World.Get(loc.Connections[dir])
		if dest == nil {
			continue
		}
		risk := "High risk"
		switch {
		case dest.DangerLevel <= 3:
			risk = "Low risk"
		case dest.DangerLevel <= 6:
			risk = "Medium risk"
		}
		paths = append(paths, fmt.Sprintf("%s: %s (%s)", titleCase(dir), dest.Name, risk))
	}

	if len(paths) == 0 {
		return "You consult the map. No clear paths marked on the map."
	}
	return "You consult the map. Available paths:\n" + strings.Join(paths, "\n")
}

// resolveInventory matches an item query against the inventory: exact,
// then prefix, then suffix, case-insensitive.
func resolveInventory(inventory []string, query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}
	for _, it := range inventory {
		lower := strings.ToLower(it)
		if lower == query || strings.HasPrefix(lower, query) || strings.HasSuffix(lower, query) {
			return it, true
		}
	}
	return "", false
}

func countMatching(inventory []string, substr string) int {
	n := 0
	for _, it := range inventory {
		if strings.Contains(strings.ToLower(it), substr) {
			n++
		}
	}
	return n
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
