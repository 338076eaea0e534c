package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/events"
	"github.com/nathoo/borderline/engine/parser"
	"github.com/nathoo/borderline/engine/resolve"
)

// Command executes one player command and returns the result text. The
// second return value is true when the player asked to quit; the front
// end owns the confirmation.
func (e *Engine) Command(input string) (string, bool) {
	if e.over {
		return "The game is over.", false
	}

	in := parser.Parse(input)
	if in.Verb == "" {
		return "Please enter a command. Type 'help' for assistance.", false
	}

	var result string
	switch in.Verb {
	case "move":
		if in.Object == "" {
			return "Move where? Try 'move north', 'move south', etc.", false
		}
		result = e.move(in.Object)
	case "talk":
		if in.Object == "" {
			return "Talk to whom? Try 'talk [character name]'.", false
		}
		result = e.talk(in.Object)
	case "take":
		if in.Object == "" {
			return "Take what? Try 'take [item name]'.", false
		}
		result = e.take(in.Object)
	case "service":
		if in.Object == "" {
			return "Use which service? Try 'use service [food/shelter/medical]'.", false
		}
		result = e.service(in.Object)
	case "use":
		if in.Object == "" {
			return "Use what? Try 'use [item name]'.", false
		}
		result = e.useItem(in.Object)
	case "look":
		result = e.look()
	case "status":
		result = e.Status()
	case "help":
		result = e.help()
	case "quit":
		return "", true
	default:
		matched, quit, ok := e.matchCommand(input, in)
		if !ok {
			return fmt.Sprintf("I don't understand '%s'. Type 'help' for assistance.",
				strings.TrimSpace(input)), false
		}
		if quit {
			return "", true
		}
		result = matched
	}

	e.checkGameOver()
	return result, false
}

// matchCommand hands free-form input the parser couldn't place to the
// semantic matcher.
func (e *Engine) matchCommand(raw string, in parser.Intent) (string, bool, bool) {
	if e.Matcher == nil {
		return "", false, false
	}
	ctx := context.Background()
	cmd, _, ok := e.Matcher.BestCommand(ctx, strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", false, false
	}

	object := in.Object
	if object == "" {
		object = strings.TrimSpace(raw)
	}

	switch {
	case strings.HasPrefix(cmd, "move "):
		return e.move(strings.TrimPrefix(cmd, "move ")), false, true
	case cmd == "talk":
		return e.talk(object), false, true
	case cmd == "take":
		return e.take(object), false, true
	case cmd == "use":
		return e.useItem(object), false, true
	case cmd == "look":
		return e.look(), false, true
	case cmd == "status":
		return e.Status(), false, true
	case cmd == "help":
		return e.help(), false, true
	case cmd == "quit":
		return "", true, true
	}
	return "", false, false
}

func (e *Engine) move(direction string) string {
	s := e.Session
	loc := s.Location()

	destID, ok := loc.Connections[direction]
	if !ok {
		return fmt.Sprintf("You cannot go %s from here.", direction)
	}
	dest := s.World.Get(destID)

	loc.RemoveCharacter(s.Player)
	dest.AddCharacter(s.Player)
	dest.Visited = true

	s.AdvanceTurn()
	s.Stats.AddDistance(10)

	report := fmt.Sprintf("You travel %s to %s.\n%s",
		direction, dest.Name, dest.Describe(true, s.World, s.Player))

	// Arrival event check.
	if s.RNG.Chance(e.eventChance(0.3)) {
		if ev := dest.RandomEvent(s.RNG); ev != nil {
			if msg, fired := events.Execute(ev, s, s.Player); fired {
				report += "\n\n" + msg
				if ev.Encounter != nil {
					s.Stats.RecordKeyEvent(firstLine(msg))
				}
			}
		}
	}
	return report
}

func (e *Engine) talk(target string) string {
	s := e.Session

	if e.Matcher != nil {
		if name, _, ok := e.Matcher.BestCharacter(context.Background(), target); ok {
			target = name
		}
	}

	var present []*character.Character
	for _, c := range s.Location().Characters {
		if c != s.Player {
			present = append(present, c)
		}
	}
	c, ok := resolve.Character(present, target)
	if !ok {
		return fmt.Sprintf("There is no one named %s here.", target)
	}

	s.AdvanceTurn()
	s.Stats.RecordLifeImpacted()
	return fmt.Sprintf("%s: '%s'", c.Name, e.Story.Line(c, s.Player))
}

func (e *Engine) take(target string) string {
	s := e.Session
	loc := s.Location()

	if e.Matcher != nil {
		if name, _, ok := e.Matcher.BestItem(context.Background(), target); ok {
			target = name
		}
	}

	item, ok := resolve.Item(loc.Items, target)
	if !ok {
		return fmt.Sprintf("There is no %s here to take.", target)
	}

	loc.RemoveItem(item)
	s.Player.AddItem(item)
	s.AdvanceTurn()
	return fmt.Sprintf("You take the %s.", item)
}

func (e *Engine) service(name string) string {
	s := e.Session
	loc := s.Location()
	if loc.Settlement == nil {
		return "This location doesn't have services."
	}
	result := loc.ProvideShelter(name, s.Player, s.RNG)
	s.AdvanceTurn()
	return result
}

func (e *Engine) look() string {
	s := e.Session
	loc := s.Location()
	return loc.Describe(true, s.World, s.Player) + "\n\n" +
		e.Story.LocationFlavor(loc.Kind(), loc.Name)
}

// Status renders the player report: turn, location, vitals with bars,
// and inventory.
func (e *Engine) Status() string {
	s := e.Session
	p := s.Player

	var b strings.Builder
	fmt.Fprintf(&b, "Turn: %d/%d\n", s.Turn, s.MaxTurns)
	fmt.Fprintf(&b, "Location: %s\n", s.Location().Name)
	fmt.Fprintf(&b, "Health: %d/100 %s\n", p.Health, visualBar(p.Health, false))

	if v, ok := p.Stat("water"); ok {
		fmt.Fprintf(&b, "Water: %d/100 %s\n", v, visualBar(v, false))
	}
	if v, ok := p.Stat("food"); ok {
		fmt.Fprintf(&b, "Food: %d/100 %s\n", v, visualBar(v, false))
	}
	fmt.Fprintf(&b, "Money: $%d\n", p.Money)
	if v, ok := p.Stat("hope"); ok {
		fmt.Fprintf(&b, "Hope: %d/100 %s\n", v, visualBar(v, false))
	}
	if v, ok := p.Stat("moral_compass"); ok {
		fmt.Fprintf(&b, "Moral Compass: %d/100 %s\n", v, visualBar(v, false))
	}
	if v, ok := p.Stat("stress"); ok {
		fmt.Fprintf(&b, "Stress: %d/100 %s\n", v, visualBar(v, true))
	}

	inv := "Empty"
	if len(p.Inventory) > 0 {
		inv = strings.Join(p.Inventory, ", ")
	}
	fmt.Fprintf(&b, "Inventory: %s\n", inv)
	return b.String()
}

const barLength = 20

// visualBar renders a stat as a filled bar with warning markers. For
// inverted stats (stress) high values are the dangerous ones.
func visualBar(value int, invert bool) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * barLength / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)

	if invert {
		switch {
		case value >= 80:
			return "[!] " + bar + " [CRITICAL]"
		case value >= 60:
			return "[!] " + bar + " [HIGH]"
		}
		return bar
	}
	switch {
	case value <= 20:
		return "[!] " + bar + " [CRITICAL]"
	case value <= 40:
		return "[!] " + bar + " [LOW]"
	}
	return bar
}

func (e *Engine) help() string {
	text := `Available commands:
- look: Examine your surroundings
- status: Check your current status and inventory
- talk [character]: Talk to a character
- take [item]: Take an item
- use [item]: Use an item from your inventory
- use service [type]: Access settlement services (food/shelter/medical)
- move [direction]: Move in a direction (north, south, east, west)
- help: Show this help text
- quit: Exit the game`

	if e.Matcher != nil {
		text += `

This game understands natural phrases, for example:
- 'check my health' instead of 'status'
- 'speak with Manuel' instead of 'talk Manuel'
- 'grab the water' instead of 'take water bottle'
- 'drink from my bottle' instead of 'use water bottle'
- 'head north' instead of 'move north'`
	}
	return text
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
