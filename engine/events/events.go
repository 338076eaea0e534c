// Package events resolves event templates against the session: eligibility
// checks, choice prompts through the session decider, and stat application.
package events

import (
	"fmt"
	"strings"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/session"
	"github.com/nathoo/borderline/engine/world"
	"github.com/nathoo/borderline/types"
)

// ItemPool is the set of items that resource events can yield.
var ItemPool = []string{
	"Water Bottle", "Canned Food", "Blanket", "Map", "Flashlight",
	"First Aid Kit", "Compass", "Family Photo", "Money", "ID Papers", "Radio",
}

// CanOccur reports whether an event template is eligible at a location,
// considering location kind and time of day.
func CanOccur(ev *types.EventDef, l *world.Location) bool {
	if len(ev.Locations) > 0 {
		match := false
		for _, k := range ev.Locations {
			if l.Kind() == k {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	if len(ev.Times) > 0 {
		match := false
		for _, t := range ev.Times {
			if l.TimeOfDay == t {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}

// CheckFlags reports whether a character's story flags satisfy the
// event's required and excluded flag sets.
func CheckFlags(ev *types.EventDef, c *character.Character) bool {
	for flag, want := range ev.Required {
		if c.Flags[flag] != want {
			return false
		}
	}
	for flag, block := range ev.Excluded {
		if c.Flags[flag] == block {
			return false
		}
	}
	return true
}

// Execute runs an event for a character. The second return value reports
// whether the event actually fired: an event whose flag requirements the
// character doesn't meet returns ("", false) and changes nothing.
func Execute(ev *types.EventDef, s *session.Context, c *character.Character) (string, bool) {
	if !CheckFlags(ev, c) {
		return "", false
	}
	switch {
	case ev.Encounter != nil:
		return executeEncounter(ev, s, c), true
	case ev.Resource != nil:
		return executeResource(ev, s, c), true
	case ev.Crossing != nil:
		return executeCrossing(ev, s, c), true
	case ev.Moral != nil:
		return executeMoral(ev, s, c), true
	case ev.Weather != nil:
		return executeWeather(ev, s, c), true
	case ev.Trauma != nil:
		return executeTrauma(ev, s, c), true
	}
	return ev.Description, true
}

// choiceStats are the stats an encounter choice may move. Anything else
// in an impact map is ignored.
var choiceStats = []string{"hope", "health", "water", "food", "moral_compass", "stress"}

func executeEncounter(ev *types.EventDef, s *session.Context, c *character.Character) string {
	p := ev.Encounter
	base := ev.Description
	if len(p.Dialogue) > 0 {
		base += fmt.Sprintf("\n\n%q", p.Dialogue[s.RNG.Pick(len(p.Dialogue))])
	}

	if len(p.Choices) > 0 {
		options := make([]session.Option, len(p.Choices))
		for i, ch := range p.Choices {
			options[i] = session.Option{Label: ch.Label}
		}
		idx := s.Decider.Choose(base, options)
		chosen := p.Choices[idx]

		s.Stats.RecordMoralChoice()
		s.Stats.RecordLifeImpacted()

		for _, stat := range choiceStats {
			if delta, ok := chosen.Impacts[stat]; ok {
				c.ApplyStat(stat, delta)
			}
		}
		for flag, v := range chosen.Flags {
			c.SetFlag(flag, v)
		}
		return fmt.Sprintf("You chose: %s\n%s", chosen.Label, chosen.Description)
	}

	// No choices: flat outcome by encounter type.
	switch p.Type {
	case types.EncounterPatrol:
		if c.ApplyStat("hope", -20) {
			return fmt.Sprintf("%s\n%s's hope diminishes.", base, c.Name)
		}
	case types.EncounterMigrant:
		if c.ApplyStat("stress", 10) {
			return fmt.Sprintf("%s\n%s's stress increases.", base, c.Name)
		}
	case types.EncounterLocal:
		if c.ApplyStat("hope", 10) {
			return fmt.Sprintf("%s\n%s feels more hopeful.", base, c.Name)
		}
	case types.EncounterWildlife:
		if s.RNG.Chance(0.3) {
			c.ApplyStat("health", -10)
			return fmt.Sprintf("%s\nThe wildlife encounter costs %s some health.", base, c.Name)
		}
		if c.ApplyStat("moral_compass", 5) {
			return fmt.Sprintf("%s\nThe wildlife encounter reminds %s of the beauty in this harsh land.", base, c.Name)
		}
	}
	return base
}

func executeResource(ev *types.EventDef, s *session.Context, c *character.Character) string {
	p := ev.Resource
	base := ev.Description

	success := true
	if p.Difficulty != nil {
		var chance int
		if c.Migrant != nil {
			chance = c.Migrant.SurvivalSkills - *p.Difficulty + 50
		} else {
			chance = 100 - *p.Difficulty
		}
		if chance < 10 {
			chance = 10
		}
		if chance > 90 {
			chance = 90
		}
		success = s.RNG.Roll(100) <= chance
	}

	if success {
		switch p.Type {
		case types.ResourceWater:
			if old, ok := c.Stat("water"); ok {
				c.ApplyStat("water", p.Amount)
				now, _ := c.Stat("water")
				if p.Amount > 0 {
					return fmt.Sprintf("%s\n%s found water (+%d water).", base, c.Name, now-old)
				}
				return fmt.Sprintf("%s\n%s lost water (%d water).", base, c.Name, now-old)
			}
		case types.ResourceFood:
			if old, ok := c.Stat("food"); ok {
				c.ApplyStat("food", p.Amount)
				now, _ := c.Stat("food")
				if p.Amount > 0 {
					return fmt.Sprintf("%s\n%s found food (+%d food).", base, c.Name, now-old)
				}
				return fmt.Sprintf("%s\n%s lost food (%d food).", base, c.Name, now-old)
			}
		case types.ResourceHealth:
			old := c.Health
			c.ApplyStat("health", p.Amount)
			if p.Amount > 0 {
				return fmt.Sprintf("%s\n%s's health improved (+%d health).", base, c.Name, c.Health-old)
			}
			return fmt.Sprintf("%s\n%s's health worsened (%d health).", base, c.Name, c.Health-old)
		case types.ResourceMoney:
			old := c.Money
			c.ApplyStat("money", p.Amount)
			if p.Amount > 0 {
				return fmt.Sprintf("%s\n%s found $%d.", base, c.Name, c.Money-old)
			}
			return fmt.Sprintf("%s\n%s lost $%d.", base, c.Name, old-c.Money)
		case types.ResourceItem:
			if p.Amount > 0 {
				item := ItemPool[s.RNG.Pick(len(ItemPool))]
				c.AddItem(item)
				return fmt.Sprintf("%s\n%s found %s.", base, c.Name, item)
			}
			if len(c.Inventory) > 0 {
				item := c.Inventory[s.RNG.Pick(len(c.Inventory))]
				c.RemoveItem(item)
				return fmt.Sprintf("%s\n%s lost %s.", base, c.Name, item)
			}
		}
		return base
	}

	if p.Amount > 0 {
		return fmt.Sprintf("%s\nDespite efforts, %s failed to acquire the resource.", base, c.Name)
	}
	// A failed protection check still costs the resource.
	switch p.Type {
	case types.ResourceWater:
		if old, ok := c.Stat("water"); ok {
			c.ApplyStat("water", p.Amount)
			now, _ := c.Stat("water")
			return fmt.Sprintf("%s\nDespite efforts to protect supplies, %s lost %d water.", base, c.Name, old-now)
		}
	case types.ResourceFood:
		if old, ok := c.Stat("food"); ok {
			c.ApplyStat("food", p.Amount)
			now, _ := c.Stat("food")
			return fmt.Sprintf("%s\nDespite efforts to protect supplies, %s lost %d food.", base, c.Name, old-now)
		}
	case types.ResourceHealth:
		old := c.Health
		c.ApplyStat("health", p.Amount)
		return fmt.Sprintf("%s\n%s was injured, losing %d health.", base, c.Name, old-c.Health)
	case types.ResourceItem:
		if len(c.Inventory) > 0 {
			item := c.Inventory[s.RNG.Pick(len(c.Inventory))]
			c.RemoveItem(item)
			return fmt.Sprintf("%s\n%s lost %s despite attempts to protect it.", base, c.Name, item)
		}
	}
	return base
}

func executeCrossing(ev *types.EventDef, s *session.Context, c *character.Character) string {
	if c.Migrant == nil {
		return "This event is only relevant for migrants."
	}
	p := ev.Crossing

	options := make([]session.Option, len(p.Methods))
	anyEnabled := false
	for i, m := range p.Methods {
		opt := session.Option{Label: fmt.Sprintf("%s: %s", m.Name, m.Description)}
		if m.MoneyCost > 0 {
			if c.Money < m.MoneyCost {
				opt.Disabled = true
				opt.Note = fmt.Sprintf("Requires $%d - you only have $%d", m.MoneyCost, c.Money)
			} else {
				opt.Note = fmt.Sprintf("Costs $%d", m.MoneyCost)
			}
		}
		if m.RequiredItem != "" && !c.HasItem(m.RequiredItem) {
			opt.Disabled = true
			opt.Note = fmt.Sprintf("Requires %s - not in your inventory", m.RequiredItem)
		}
		if !opt.Disabled {
			anyEnabled = true
		}
		options[i] = opt
	}

	if !anyEnabled {
		return "You don't have the resources needed for any crossing method. You'll need to gather more supplies or money."
	}

	prompt := ev.Description + "\n\nYou must find a way past the heavily guarded border wall. Each method has risks and requirements."
	method := p.Methods[s.Decider.Choose(prompt, options)]

	if method.MoneyCost > 0 {
		c.Money -= method.MoneyCost
	}

	success := s.RNG.Roll(100) <= method.SuccessChance
	healthImpact := method.HealthRisk
	if !success {
		healthImpact = healthImpact * 3 / 2
	}
	oldHealth := c.Health
	c.ApplyStat("health", -healthImpact)
	healthChange := c.Health - oldHealth

	result := fmt.Sprintf("You attempt to cross using the '%s' method.\n\n", method.Name)
	if success {
		result += method.OnSuccess
		result += fmt.Sprintf("\n\nThe crossing takes a physical toll (%d health).", healthChange)

		if loc := s.Location(); loc != nil && loc.ID == world.BorderWall {
			loc.RemoveCharacter(c)
			us := s.World.Get(world.NogalesUS)
			us.AddCharacter(c)
			us.Visited = true

			s.Stats.RecordKeyEvent("Successfully crossed border using " + method.Name)
			c.ApplyStat("hope", 15)
			result += " Despite the difficulties, your spirits rise as you set foot on US soil."
		}
		c.ApplyStat("trauma", 5)
	} else {
		result += method.OnFailure
		result += fmt.Sprintf("\n\nThe failed attempt is costly to your health (%d health).", healthChange)
		c.ApplyStat("hope", -10)
		result += " Your failed attempt weighs heavily on your spirit."
		s.Stats.RecordKeyEvent("Failed border crossing attempt using " + method.Name)
		c.ApplyStat("trauma", 10)
	}

	// A crossing attempt consumes the turn on its own.
	s.Turn++
	return result
}

func executeMoral(ev *types.EventDef, s *session.Context, c *character.Character) string {
	p := ev.Moral

	options := make([]session.Option, len(p.Choices))
	for i, choice := range p.Choices {
		options[i] = session.Option{Label: choice}
	}
	idx := s.Decider.Choose(ev.Description, options)
	cons := p.Consequences[idx]

	var changes []string
	record := func(name string, delta int) {
		if delta != 0 {
			sign := ""
			if delta > 0 {
				sign = "+"
			}
			changes = append(changes, fmt.Sprintf("%s: %s%d", name, sign, delta))
		}
	}

	if c.Agent != nil {
		old := c.Agent.MoralCompass
		c.ApplyStat("moral_compass", cons.MoralImpact)
		record("moral", c.Agent.MoralCompass-old)

		oldStress := c.Agent.Stress
		c.ApplyStat("stress", cons.StressImpact)
		record("stress", c.Agent.Stress-oldStress)
	}

	if c.Migrant != nil {
		old := c.Migrant.Hope
		c.ApplyStat("hope", cons.HopeImpact)
		record("hope", c.Migrant.Hope-old)

		// Survival and loyalty dilemmas scar: unset trauma defaults to
		// half the hope cost.
		if p.Type == "survival" || p.Type == "loyalty" {
			traumaImpact := 0
			if cons.TraumaImpact != nil {
				traumaImpact = *cons.TraumaImpact
			} else if cons.HopeImpact < 0 {
				traumaImpact = -cons.HopeImpact / 2
			}
			oldTrauma := c.Migrant.Trauma
			c.ApplyStat("trauma", traumaImpact)
			record("trauma", c.Migrant.Trauma-oldTrauma)
		}
	}

	if cons.HealthImpact != 0 {
		old := c.Health
		c.ApplyStat("health", cons.HealthImpact)
		record("health", c.Health-old)
	}

	for flag, v := range cons.Flags {
		c.SetFlag(flag, v)
	}

	s.Stats.RecordMoralChoice()
	if cons.ImpactOthers {
		s.Stats.RecordLifeImpacted()
	}

	result := cons.Description
	if len(changes) > 0 {
		result += fmt.Sprintf("\n[%s]", strings.Join(changes, ", "))
	}
	return fmt.Sprintf("You chose: %s\n%s", p.Choices[idx], result)
}

func executeWeather(ev *types.EventDef, s *session.Context, c *character.Character) string {
	p := ev.Weather
	s.Weather = &types.Weather{
		Name:        ev.Name,
		Description: ev.Description,
		Effects:     p.Effects,
		Duration:    p.Duration,
	}

	var impact strings.Builder
	if p.Effects.ImmediateWater != 0 {
		if old, ok := c.Stat("water"); ok {
			c.ApplyStat("water", p.Effects.ImmediateWater)
			now, _ := c.Stat("water")
			if diff := now - old; diff != 0 {
				fmt.Fprintf(&impact, "\nWater: %s%d", plusSign(diff), diff)
			}
		}
	}
	if p.Effects.ImmediateHealth != 0 {
		old := c.Health
		c.ApplyStat("health", p.Effects.ImmediateHealth)
		if diff := c.Health - old; diff != 0 {
			fmt.Fprintf(&impact, "\nHealth: %s%d", plusSign(diff), diff)
		}
	}

	if loc := s.Location(); loc != nil {
		if p.Effects.Visibility != nil {
			loc.SetEnvironment("visibility", *p.Effects.Visibility)
		}
		if p.Effects.Terrain != "" {
			loc.SetEnvironment("terrain", p.Effects.Terrain)
		}
		if p.Effects.Temperature != "" {
			loc.SetEnvironment("temperature", p.Effects.Temperature)
		}
	}

	return ev.Description + impact.String()
}

var traumaReflections = []string{
	"Some memories can never be fully processed.",
	"The border changes all who cross it, in ways both visible and invisible.",
	"Trauma accumulates like layers of sediment, eventually hardening into something unrecognizable.",
	"What the eyes see, the heart carries forever.",
	"To witness suffering is to bear a fragment of it within yourself.",
}

func executeTrauma(ev *types.EventDef, s *session.Context, c *character.Character) string {
	p := ev.Trauma

	// Hope and a firm moral compass blunt the severity.
	severity := p.Level
	if hope, ok := c.Stat("hope"); ok && hope > 70 {
		severity -= 2
	}
	if moral, ok := c.Stat("moral_compass"); ok && moral > 70 {
		severity--
	}
	if severity < 1 {
		severity = 1
	}

	var impact strings.Builder
	if old, ok := c.Stat("trauma"); ok {
		c.ApplyStat("trauma", severity*5)
		now, _ := c.Stat("trauma")
		fmt.Fprintf(&impact, "\nTrauma: +%d", now-old)
	}
	if old, ok := c.Stat("hope"); ok {
		c.ApplyStat("hope", -severity*3)
		now, _ := c.Stat("hope")
		fmt.Fprintf(&impact, "\nHope: %d", now-old)
	}

	for stat, delta := range p.Impact {
		switch stat {
		case "health":
			old := c.Health
			c.ApplyStat("health", delta)
			if diff := c.Health - old; diff != 0 {
				fmt.Fprintf(&impact, "\nHealth: %s%d", plusSign(diff), diff)
			}
		case "stress":
			if old, ok := c.Stat("stress"); ok {
				c.ApplyStat("stress", delta)
				now, _ := c.Stat("stress")
				if diff := now - old; diff != 0 {
					fmt.Fprintf(&impact, "\nStress: %s%d", plusSign(diff), diff)
				}
			}
		}
	}

	c.SetFlag("experienced_"+snakeCase(ev.Name), true)
	s.Stats.RecordTrauma()

	reflection := traumaReflections[s.RNG.Pick(len(traumaReflections))]
	return fmt.Sprintf("%s%s\n\n%s", ev.Description, impact.String(), reflection)
}

func plusSign(v int) string {
	if v > 0 {
		return "+"
	}
	return ""
}

func snakeCase(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
