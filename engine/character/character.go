// Package character implements the attribute model: the two playable
// character kinds, their vitals, and every stat-mutating operation.
// All vitals clamp to [0,100] on mutation; money floors at 0.
package character

import (
	"fmt"
	"strings"

	"github.com/nathoo/borderline/engine/rng"
)

// Kind identifies a character variant.
type Kind string

const (
	KindGeneric Kind = "generic"
	KindMigrant Kind = "migrant"
	KindAgent   Kind = "patrol"
)

// FamilyTie is one family member a migrant carries in memory.
type FamilyTie struct {
	Name         string
	Relationship string
}

// MigrantStats holds the vitals and traits specific to migrants.
type MigrantStats struct {
	Origin         string
	Motivation     string
	Water          int // 0-100
	Food           int // 0-100
	Hope           int // 0-100
	SurvivalSkills int // 0-100, grows with experience
	Trauma         int // 0-100
	FamilyTies     []FamilyTie
}

// AgentStats holds the vitals and traits specific to border agents.
type AgentStats struct {
	YearsOfService int
	MoralCompass   int // 0 corrupt .. 100 strictly moral
	Stress         int // 0-100
	Encounters     int
	Water          int // 0-100
	Food           int // 0-100
	Experience     int // 0-100
	Standing       int // department standing, 0-100
}

// Character is the base record shared by all character kinds. Exactly one
// of Migrant/Agent is non-nil for playable kinds; both are nil for plain
// NPCs. Stat operations on an absent capability are silent no-ops.
type Character struct {
	Name        string
	Description string
	Health      int // 0-100
	Money       int // floors at 0, no upper clamp
	Inventory   []string
	Flags       map[string]bool
	Traits      []string
	Location    string // current location ID, maintained by the world

	Migrant *MigrantStats
	Agent   *AgentStats
}

// New creates a plain non-player character.
func New(name, description string, health int) *Character {
	return &Character{
		Name:        name,
		Description: description,
		Health:      clamp(health),
		Flags:       map[string]bool{},
	}
}

// NewMigrant creates a migrant character with full vitals.
func NewMigrant(name, description, origin, motivation string, health int) *Character {
	c := New(name, description, health)
	c.Money = 100
	c.Migrant = &MigrantStats{
		Origin:     origin,
		Motivation: motivation,
		Water:      100,
		Food:       100,
		Hope:       100,
	}
	return c
}

// NewAgent creates a border-agent character. Experience derives from years
// of service, ten points per year.
func NewAgent(name, description string, yearsOfService, health int) *Character {
	c := New(name, description, health)
	c.Money = 200
	c.Agent = &AgentStats{
		YearsOfService: yearsOfService,
		MoralCompass:   50,
		Water:          100,
		Food:           100,
		Experience:     clamp(yearsOfService * 10),
		Standing:       50,
	}
	return c
}

// Kind returns the character's variant.
func (c *Character) Kind() Kind {
	switch {
	case c.Migrant != nil:
		return KindMigrant
	case c.Agent != nil:
		return KindAgent
	default:
		return KindGeneric
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Describe returns a description of the character, with kind-specific detail.
func (c *Character) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", c.Name, c.Description)
	if len(c.Traits) > 0 {
		fmt.Fprintf(&b, "\nTraits: %s", strings.Join(c.Traits, ", "))
	}

	switch {
	case c.Migrant != nil:
		m := c.Migrant
		fmt.Fprintf(&b, "\nOrigin: %s\nMotivation: %s", m.Origin, m.Motivation)
		if len(m.FamilyTies) > 0 {
			ties := make([]string, len(m.FamilyTies))
			for i, t := range m.FamilyTies {
				ties[i] = fmt.Sprintf("%s (%s)", t.Name, t.Relationship)
			}
			fmt.Fprintf(&b, "\nFamily: %s", strings.Join(ties, ", "))
		}
	case c.Agent != nil:
		a := c.Agent
		fmt.Fprintf(&b, "\nYears of Service: %d", a.YearsOfService)
		switch {
		case a.Standing >= 80:
			b.WriteString("\nYou're highly respected within the department.")
		case a.Standing >= 60:
			b.WriteString("\nYou have a good reputation among your colleagues.")
		case a.Standing >= 40:
			b.WriteString("\nYour standing in the department is average.")
		case a.Standing >= 20:
			b.WriteString("\nSome colleagues question your commitment to the job.")
		default:
			b.WriteString("\nYour reputation within the department has suffered.")
		}
	}
	return b.String()
}

// AddItem appends an item to the inventory. Duplicates are allowed:
// items are stackable consumables.
func (c *Character) AddItem(item string) string {
	c.Inventory = append(c.Inventory, item)
	return fmt.Sprintf("%s acquired %s.", c.Name, item)
}

// RemoveItem removes one instance of an item if present.
func (c *Character) RemoveItem(item string) string {
	for i, it := range c.Inventory {
		if it == item {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return fmt.Sprintf("%s no longer has %s.", c.Name, item)
		}
	}
	return fmt.Sprintf("%s doesn't have %s.", c.Name, item)
}

// HasItem reports whether the inventory contains at least one of the item.
func (c *Character) HasItem(item string) bool {
	for _, it := range c.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// SetFlag sets a story flag.
func (c *Character) SetFlag(name string, value bool) {
	c.Flags[name] = value
}

// HasFlag reports whether a story flag is set true.
func (c *Character) HasFlag(name string) bool {
	return c.Flags[name]
}

// AddTrait adds a personality trait if not already present.
func (c *Character) AddTrait(trait string) string {
	for _, t := range c.Traits {
		if t == trait {
			return fmt.Sprintf("%s already has the trait: %s", c.Name, trait)
		}
	}
	c.Traits = append(c.Traits, trait)
	return fmt.Sprintf("%s now has the trait: %s", c.Name, trait)
}

// HasTrait reports whether the character has a trait.
func (c *Character) HasTrait(trait string) bool {
	for _, t := range c.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// AddFamilyTie records a family member for a migrant.
func (c *Character) AddFamilyTie(name, relationship string) string {
	if c.Migrant == nil {
		return ""
	}
	c.Migrant.FamilyTies = append(c.Migrant.FamilyTies, FamilyTie{Name: name, Relationship: relationship})
	return fmt.Sprintf("%s thinks of %s, their %s.", c.Name, name, relationship)
}

// effectiveConsumption applies the skill/experience reduction: up to 50%
// at 100 skill, with a floor of one unit consumed.
func effectiveConsumption(amount, skill int) int {
	if skill <= 0 {
		return amount
	}
	factor := 1.0 - float64(skill)/200
	eff := int(float64(amount) * factor)
	if eff < 1 {
		eff = 1
	}
	return eff
}

// ConsumeResources deducts water and food, applies tiered health penalties,
// and returns a status message whose severity is a function of the total
// health loss. Characters without water/food vitals are unaffected.
func (c *Character) ConsumeResources(waterAmount, foodAmount int) string {
	switch {
	case c.Migrant != nil:
		return c.consumeMigrant(waterAmount, foodAmount)
	case c.Agent != nil:
		return c.consumeAgent(waterAmount, foodAmount)
	default:
		return ""
	}
}

func (c *Character) consumeMigrant(waterAmount, foodAmount int) string {
	m := c.Migrant
	waterAmount = effectiveConsumption(waterAmount, m.SurvivalSkills)
	foodAmount = effectiveConsumption(foodAmount, m.SurvivalSkills)

	m.Water = clamp(m.Water - waterAmount)
	m.Food = clamp(m.Food - foodAmount)

	healthLoss := 0
	var effects []string

	switch {
	case m.Water <= 0:
		healthLoss += 20
		effects = append(effects, "severe dehydration")
	case m.Water < 20:
		healthLoss += 5
		effects = append(effects, "dehydration")
	}

	switch {
	case m.Food <= 0:
		healthLoss += 8
		effects = append(effects, "starvation")
	case m.Food < 20:
		healthLoss += 3
		effects = append(effects, "hunger")
	}

	if m.Hope < 30 {
		healthLoss += 2
		effects = append(effects, "despair")
	}

	if healthLoss > 0 {
		c.Health = clamp(c.Health - healthLoss)
	}

	if len(effects) == 0 {
		return fmt.Sprintf("%s is doing well.", c.Name)
	}
	joined := strings.Join(effects, " and ")
	switch {
	case healthLoss > 15:
		return fmt.Sprintf("%s is severely weakened by %s.", c.Name, joined)
	case healthLoss > 0:
		return fmt.Sprintf("%s is suffering from %s.", c.Name, joined)
	default:
		return fmt.Sprintf("%s is experiencing %s.", c.Name, joined)
	}
}

func (c *Character) consumeAgent(waterAmount, foodAmount int) string {
	a := c.Agent
	waterAmount = effectiveConsumption(waterAmount, a.Experience)
	foodAmount = effectiveConsumption(foodAmount, a.Experience)

	a.Water = clamp(a.Water - waterAmount)
	a.Food = clamp(a.Food - foodAmount)

	healthLoss := 0
	var effects []string

	switch {
	case a.Water <= 0:
		healthLoss += 5
		effects = append(effects, "severe dehydration")
	case a.Water < 20:
		healthLoss += 2
		effects = append(effects, "thirst")
	}

	switch {
	case a.Food <= 0:
		healthLoss += 4
		effects = append(effects, "hunger")
	case a.Food < 20:
		healthLoss += 1
		effects = append(effects, "mild hunger")
	}

	if a.Stress > 70 {
		healthLoss += 2
		effects = append(effects, "stress")
	}

	if healthLoss > 0 {
		c.Health = clamp(c.Health - healthLoss)
	}

	if len(effects) == 0 {
		return fmt.Sprintf("%s is doing well.", c.Name)
	}
	joined := strings.Join(effects, " and ")
	switch {
	case healthLoss > 10:
		return fmt.Sprintf("%s is significantly affected by %s.", c.Name, joined)
	case healthLoss > 0:
		return fmt.Sprintf("%s is dealing with %s.", c.Name, joined)
	default:
		return fmt.Sprintf("%s is experiencing %s.", c.Name, joined)
	}
}

// ChangeHope shifts a migrant's hope and lets positive deltas partially
// heal trauma: min(trauma, delta/3). The message bands at |change| > 20,
// > 10, > 0 in each direction.
func (c *Character) ChangeHope(amount int) string {
	if c.Migrant == nil {
		return ""
	}
	m := c.Migrant
	old := m.Hope
	m.Hope = clamp(m.Hope + amount)
	change := m.Hope - old

	if amount > 0 && m.Trauma > 0 {
		recovery := amount / 3
		if recovery > m.Trauma {
			recovery = m.Trauma
		}
		m.Trauma = clamp(m.Trauma - recovery)
	}

	switch {
	case change > 20:
		return fmt.Sprintf("%s feels a powerful surge of hope.", c.Name)
	case change > 10:
		return fmt.Sprintf("%s feels significantly more hopeful.", c.Name)
	case change > 0:
		return fmt.Sprintf("%s feels a bit more hopeful.", c.Name)
	case change < -20:
		return fmt.Sprintf("%s feels overwhelmed by despair.", c.Name)
	case change < -10:
		return fmt.Sprintf("%s's hope diminishes significantly.", c.Name)
	case change < 0:
		return fmt.Sprintf("%s feels slightly less hopeful.", c.Name)
	default:
		return fmt.Sprintf("%s's hope remains unchanged.", c.Name)
	}
}

// ImproveSkill raises a migrant's survival skills from experience.
func (c *Character) ImproveSkill(amount int) string {
	if c.Migrant == nil {
		return ""
	}
	m := c.Migrant
	old := m.SurvivalSkills
	m.SurvivalSkills = clamp(m.SurvivalSkills + amount)
	if m.SurvivalSkills > old {
		return fmt.Sprintf("%s learns from experience, improving their survival skills.", c.Name)
	}
	return fmt.Sprintf("%s's survival instincts are already well-developed.", c.Name)
}

// ExperienceTrauma accumulates trauma and bleeds half the amount out of hope.
func (c *Character) ExperienceTrauma(amount int, eventDescription string) string {
	if c.Migrant == nil {
		return ""
	}
	m := c.Migrant
	m.Trauma = clamp(m.Trauma + amount)
	m.Hope = clamp(m.Hope - amount/2)

	if eventDescription != "" {
		return fmt.Sprintf("%s is deeply affected by %s. The trauma weighs heavily.", c.Name, eventDescription)
	}
	return fmt.Sprintf("%s experiences trauma that affects their mental state.", c.Name)
}

// EncounterMigrant resolves an agent's encounter with a migrant. Experience
// dampens the stress gain; the chosen action shifts moral compass and
// department standing, with a random chance that a deviation is noticed.
func (c *Character) EncounterMigrant(migrant *Character, action string, r *rng.RNG) string {
	if c.Agent == nil {
		return ""
	}
	a := c.Agent
	a.Encounters++

	baseStress := r.Roll(10)
	factor := 1.0 - float64(a.Experience)/120
	if factor < 0.2 {
		factor = 0.2
	}
	a.Stress = clamp(a.Stress + int(float64(baseStress)*factor))

	switch action {
	case "detain":
		poorCondition := migrant.Health < 30 ||
			(migrant.Migrant != nil && migrant.Migrant.Water < 20)
		if poorCondition {
			a.MoralCompass = clamp(a.MoralCompass - 5)
			return fmt.Sprintf("%s detained %s, who was in poor condition. This weighs on %s's conscience.",
				c.Name, migrant.Name, c.Name)
		}
		a.Standing = clamp(a.Standing + 5)
		return fmt.Sprintf("%s detained %s according to protocol.", c.Name, migrant.Name)

	case "help":
		a.MoralCompass = clamp(a.MoralCompass + 10)
		if r.Chance(0.3) {
			a.Standing = clamp(a.Standing - 5)
			return fmt.Sprintf("%s chose to help %s, providing water and medical attention. A colleague noticed this deviation from protocol.",
				c.Name, migrant.Name)
		}
		return fmt.Sprintf("%s chose to help %s, providing water and medical attention before processing.",
			c.Name, migrant.Name)

	case "ignore":
		a.MoralCompass = clamp(a.MoralCompass - 15)
		if r.Chance(0.2) {
			a.Standing = clamp(a.Standing - 15)
			return fmt.Sprintf("%s chose to look the other way, allowing %s to continue undetained. This violation of duty was reported.",
				c.Name, migrant.Name)
		}
		return fmt.Sprintf("%s chose to look the other way, allowing %s to continue undetained.",
			c.Name, migrant.Name)
	}

	return fmt.Sprintf("%s encountered %s.", c.Name, migrant.Name)
}

// ProcessStress applies the effects of accumulated stress on an agent.
func (c *Character) ProcessStress() string {
	if c.Agent == nil {
		return ""
	}
	a := c.Agent
	var effects []string

	switch {
	case a.Stress > 80:
		c.Health = clamp(c.Health - 5)
		effects = append(effects, "severe burnout")
	case a.Stress > 60:
		c.Health = clamp(c.Health - 2)
		effects = append(effects, "trouble sleeping")
	case a.Stress > 40:
		effects = append(effects, "preoccupation with work")
	}

	if a.Stress < 30 {
		a.Stress = clamp(a.Stress - 5)
		return fmt.Sprintf("%s is managing work stress well.", c.Name)
	}

	if len(effects) == 0 {
		return fmt.Sprintf("%s is coping with the job's demands.", c.Name)
	}
	return fmt.Sprintf("%s is experiencing %s due to job stress.", c.Name, strings.Join(effects, " and "))
}

// ModifyStanding shifts an agent's department standing with banded messages.
func (c *Character) ModifyStanding(amount int) string {
	if c.Agent == nil {
		return ""
	}
	a := c.Agent
	old := a.Standing
	a.Standing = clamp(a.Standing + amount)
	change := a.Standing - old

	switch {
	case change > 15:
		return fmt.Sprintf("%s's actions have significantly improved their standing in the department.", c.Name)
	case change > 0:
		return fmt.Sprintf("%s's reputation in the department has slightly improved.", c.Name)
	case change < -15:
		return fmt.Sprintf("%s's actions have seriously damaged their reputation in the department.", c.Name)
	case change < 0:
		return fmt.Sprintf("%s's standing in the department has slightly suffered.", c.Name)
	default:
		return fmt.Sprintf("%s's departmental standing remains unchanged.", c.Name)
	}
}

// ApplyStat applies a signed delta to a named stat, clamping the result.
// Stats a character kind doesn't carry are silent no-ops: the return value
// reports whether anything changed. Money floors at 0 with no upper clamp.
func (c *Character) ApplyStat(stat string, delta int) bool {
	if delta == 0 {
		return false
	}
	switch stat {
	case "health":
		old := c.Health
		c.Health = clamp(c.Health + delta)
		return c.Health != old
	case "money":
		old := c.Money
		c.Money += delta
		if c.Money < 0 {
			c.Money = 0
		}
		return c.Money != old
	case "hope":
		if c.Migrant == nil {
			return false
		}
		old := c.Migrant.Hope
		c.Migrant.Hope = clamp(c.Migrant.Hope + delta)
		return c.Migrant.Hope != old
	case "water":
		switch {
		case c.Migrant != nil:
			old := c.Migrant.Water
			c.Migrant.Water = clamp(c.Migrant.Water + delta)
			return c.Migrant.Water != old
		case c.Agent != nil:
			old := c.Agent.Water
			c.Agent.Water = clamp(c.Agent.Water + delta)
			return c.Agent.Water != old
		}
		return false
	case "food":
		switch {
		case c.Migrant != nil:
			old := c.Migrant.Food
			c.Migrant.Food = clamp(c.Migrant.Food + delta)
			return c.Migrant.Food != old
		case c.Agent != nil:
			old := c.Agent.Food
			c.Agent.Food = clamp(c.Agent.Food + delta)
			return c.Agent.Food != old
		}
		return false
	case "trauma":
		if c.Migrant == nil {
			return false
		}
		old := c.Migrant.Trauma
		c.Migrant.Trauma = clamp(c.Migrant.Trauma + delta)
		return c.Migrant.Trauma != old
	case "moral_compass":
		if c.Agent == nil {
			return false
		}
		old := c.Agent.MoralCompass
		c.Agent.MoralCompass = clamp(c.Agent.MoralCompass + delta)
		return c.Agent.MoralCompass != old
	case "stress":
		if c.Agent == nil {
			return false
		}
		old := c.Agent.Stress
		c.Agent.Stress = clamp(c.Agent.Stress + delta)
		return c.Agent.Stress != old
	case "survival_skills":
		if c.Migrant == nil {
			return false
		}
		old := c.Migrant.SurvivalSkills
		c.Migrant.SurvivalSkills = clamp(c.Migrant.SurvivalSkills + delta)
		return c.Migrant.SurvivalSkills != old
	}
	return false
}

// Stat returns the value of a named stat and whether the character has it.
func (c *Character) Stat(stat string) (int, bool) {
	switch stat {
	case "health":
		return c.Health, true
	case "money":
		return c.Money, true
	case "hope":
		if c.Migrant != nil {
			return c.Migrant.Hope, true
		}
	case "water":
		if c.Migrant != nil {
			return c.Migrant.Water, true
		}
		if c.Agent != nil {
			return c.Agent.Water, true
		}
	case "food":
		if c.Migrant != nil {
			return c.Migrant.Food, true
		}
		if c.Agent != nil {
			return c.Agent.Food, true
		}
	case "trauma":
		if c.Migrant != nil {
			return c.Migrant.Trauma, true
		}
	case "moral_compass":
		if c.Agent != nil {
			return c.Agent.MoralCompass, true
		}
	case "stress":
		if c.Agent != nil {
			return c.Agent.Stress, true
		}
	case "survival_skills":
		if c.Migrant != nil {
			return c.Migrant.SurvivalSkills, true
		}
	}
	return 0, false
}
