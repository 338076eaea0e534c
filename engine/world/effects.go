package world

import (
	"fmt"
	"strings"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/rng"
	"github.com/nathoo/borderline/types"
)

// EncounterChance returns the chance (0-100) of a patrol encounter at this
// location. Non-border locations have none. Day patrols are more visible
// (x0.8), night patrols more frequent (x1.2).
func (l *Location) EncounterChance() int {
	if l.Border == nil {
		return 0
	}
	chance := float64(l.Border.SurveillanceLevel())
	switch l.TimeOfDay {
	case types.Day:
		chance *= 0.8
	case types.Night:
		chance *= 1.2
	}
	c := int(chance)
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// ApplyEffects applies the location's per-turn environmental effects to a
// character and returns a narration of what happened. Generic locations
// return "".
func (l *Location) ApplyEffects(c *character.Character, r *rng.RNG) string {
	switch {
	case l.Desert != nil:
		return l.applyDesert(c)
	case l.Border != nil:
		return l.applyBorder(c, r)
	case l.Settlement != nil:
		return l.applySettlement(c, r)
	default:
		return ""
	}
}

// compose joins the character-state clause and the impact messages into a
// single sentence-per-clause narration.
func compose(name, verb string, effects, impacts []string) string {
	var parts []string
	if len(effects) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s %s", name, verb, strings.Join(effects, " and ")))
	}
	if len(impacts) > 0 {
		parts = append(parts, strings.Join(impacts, ". "))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

func (l *Location) applyDesert(c *character.Character) string {
	var effects, impacts []string

	if water, ok := c.Stat("water"); ok {
		if water < 30 {
			effects = append(effects, "severely dehydrated")
			impacts = append(impacts, "Your throat burns with thirst")
		} else if water < 50 {
			effects = append(effects, "thirsty")
			impacts = append(impacts, "Your lips crack from dryness")
		}
	}

	if l.DangerLevel > 5 && c.Health < 50 {
		effects = append(effects, "weakened by the harsh conditions")
		impacts = append(impacts, "The relentless sun saps your strength")
	} else if l.DangerLevel > 7 {
		effects = append(effects, "struggling against the extreme heat")
		impacts = append(impacts, "Waves of heat distort your vision")
	}

	switch {
	case c.Migrant != nil:
		m := c.Migrant
		if l.TimeOfDay == types.Night && m.Hope < 90 {
			c.ApplyStat("hope", 5)
			impacts = append(impacts, "The star-filled desert night brings a moment of beauty amidst hardship")
		} else if l.TimeOfDay == types.Day && m.Hope > 10 {
			c.ApplyStat("hope", -2)
			impacts = append(impacts, "The endless expanse of sand challenges your resolve")
		}
		if m.SurvivalSkills > 50 {
			impacts = append(impacts, "Your experience helps you navigate the desert's challenges")
		}
	case c.Agent != nil:
		if l.TimeOfDay == types.Day {
			c.ApplyStat("stress", 5)
			effects = append(effects, "stressed from desert heat")
		} else {
			c.ApplyStat("stress", 2)
			effects = append(effects, "fatigued from desert patrol")
		}
	}

	if msg := compose(c.Name, "is", effects, impacts); msg != "" {
		return msg
	}
	return fmt.Sprintf("%s endures the challenging desert conditions.", c.Name)
}

func (l *Location) applyBorder(c *character.Character, r *rng.RNG) string {
	var effects, impacts []string

	switch {
	case c.Migrant != nil:
		roll := r.Roll(100)
		// Survival skills shave a fifth of their value off the threshold.
		threshold := l.EncounterChance() - c.Migrant.SurvivalSkills/5
		if roll <= threshold {
			c.ApplyStat("hope", -10)
			effects = append(effects, "anxious about patrol presence")
			impacts = append(impacts, "You spot a Border Patrol vehicle in the distance")
			c.ApplyStat("trauma", 5)
		} else if roll <= threshold+10 {
			effects = append(effects, "on edge")
			impacts = append(impacts, "The sound of a patrol vehicle passes nearby")
		}
	case c.Agent != nil:
		c.ApplyStat("stress", 3)
		effects = append(effects, "alert and vigilant")
		if r.Chance(0.2) {
			c.Agent.Standing = clampStat(c.Agent.Standing + 2)
			impacts = append(impacts, "Your presence at the border is noted by supervisors")
		}
	}

	if msg := compose(c.Name, "is", effects, impacts); msg != "" {
		return msg
	}
	return fmt.Sprintf("%s remains watchful at the border.", c.Name)
}

func (l *Location) applySettlement(c *character.Character, r *rng.RNG) string {
	s := l.Settlement
	var effects, impacts []string

	switch s.Attitude {
	case types.Friendly:
		if hope, ok := c.Stat("hope"); ok && hope < 95 {
			c.ApplyStat("hope", 5)
			impacts = append(impacts, "The welcoming atmosphere lifts your spirits")
		}
		if r.Chance(0.1) && !l.HasItem("Water Bottle") {
			l.AddItem("Water Bottle")
			impacts = append(impacts, "A local resident left water for travelers")
		}
	case types.Hostile:
		switch {
		case c.Migrant != nil:
			c.ApplyStat("hope", -5)
			effects = append(effects, "unwelcome")
			if r.Chance(0.15) {
				impacts = append(impacts, "You notice someone watching you with suspicion")
			}
		case c.Agent != nil:
			c.ApplyStat("stress", 5)
			effects = append(effects, "tense")
			impacts = append(impacts, "The locals seem uncooperative with authorities")
		}
	}

	if s.HasService("food") {
		if food, ok := c.Stat("food"); ok && food < 30 {
			impacts = append(impacts, "The availability of food services provides some relief")
		}
	}
	if s.HasService("medical") && c.Health < 40 {
		impacts = append(impacts, "Knowing medical help is available eases your concern")
	}

	return compose(c.Name, "feels", effects, impacts)
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

var serviceCosts = map[string]int{
	"food":    20,
	"shelter": 30,
	"medical": 50,
}

var attitudeMultipliers = map[types.Attitude]float64{
	types.Friendly: 0.7,
	types.Neutral:  1.0,
	types.Wary:     1.3,
	types.Hostile:  1.8,
}

var travelerTips = []string{
	"You overhear other travelers discussing safer crossing points.",
	"A local mentions increased patrol activity to the west.",
	"Someone shares the location of a water cache in the desert.",
}

// ProvideShelter sells a settlement service to a character. Pricing is the
// base cost scaled by local attitude; a character who can't pay is turned
// away with the price quoted and nothing changes.
func (l *Location) ProvideShelter(service string, c *character.Character, r *rng.RNG) string {
	if l.Settlement == nil {
		return fmt.Sprintf("No %s service available here.", service)
	}
	s := l.Settlement

	service = strings.ToLower(service)
	if !s.HasService(service) {
		return fmt.Sprintf("No %s service available here.", service)
	}

	cost := int(float64(serviceCosts[service]) * attitudeMultipliers[s.Attitude])
	if c.Money < cost {
		return fmt.Sprintf("You don't have enough money for %s service (needs $%d).", service, cost)
	}

	switch service {
	case "food":
		food, ok := c.Stat("food")
		if !ok {
			break
		}
		c.ApplyStat("food", 40)
		newFood, _ := c.Stat("food")
		c.Money -= cost

		msg := fmt.Sprintf("%s pays $%d and receives a meal, restoring %d food.", c.Name, cost, newFood-food)
		if s.Population > 5000 && r.Chance(0.3) {
			msg += " " + travelerTips[r.Pick(len(travelerTips))]
		}
		return msg

	case "shelter":
		old := c.Health
		c.Health = clampStat(c.Health + 20)
		c.Money -= cost

		msg := fmt.Sprintf("%s pays $%d for shelter and rests safely, recovering %d health.", c.Name, cost, c.Health-old)
		switch {
		case c.Agent != nil:
			oldStress := c.Agent.Stress
			c.Agent.Stress = clampStat(c.Agent.Stress - 15)
			msg += fmt.Sprintf(" The rest also reduces stress by %d points.", oldStress-c.Agent.Stress)
		case c.Migrant != nil:
			oldHope := c.Migrant.Hope
			c.Migrant.Hope = clampStat(c.Migrant.Hope + 10)
			msg += fmt.Sprintf(" The safe environment improves hope by %d points.", c.Migrant.Hope-oldHope)
		}
		return msg

	case "medical":
		old := c.Health
		c.Health = clampStat(c.Health + 35)
		c.Money -= cost

		msg := fmt.Sprintf("%s pays $%d and receives medical care, healing %d health.", c.Name, cost, c.Health-old)
		if trauma, ok := c.Stat("trauma"); ok && trauma > 0 {
			c.ApplyStat("trauma", -10)
			newTrauma, _ := c.Stat("trauma")
			if trauma-newTrauma > 0 {
				msg += fmt.Sprintf(" The professional care helps process some trauma (-%d trauma).", trauma-newTrauma)
			}
		}
		return msg
	}

	return fmt.Sprintf("Used %s service for $%d.", service, cost)
}
