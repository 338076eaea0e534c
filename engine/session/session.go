// Package session holds the per-playthrough state shared by the engine,
// the event system, and the narrative layer: the world, the player, the
// random source, the journey ledger, and the hook back to whatever front
// end answers multiple-choice prompts.
package session

import (
	"github.com/google/uuid"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/rng"
	"github.com/nathoo/borderline/engine/world"
	"github.com/nathoo/borderline/types"
)

// Option is one selectable entry of a multiple-choice prompt. Disabled
// options are shown but cannot be chosen; Note explains why (price,
// missing item).
type Option struct {
	Label    string
	Disabled bool
	Note     string
}

// Decider answers multiple-choice prompts. The engine blocks on Choose
// mid-turn, so front ends decide how to collect input: the terminal UI
// runs a nested prompt, scripted sessions pop from a queue. The return
// value indexes into options and must point at an enabled entry.
type Decider interface {
	Choose(prompt string, options []Option) int
}

// ScriptDecider replays a fixed sequence of picks. When the script runs
// out it falls back to the first enabled option.
type ScriptDecider struct {
	Picks []int
	next  int
}

func (d *ScriptDecider) Choose(prompt string, options []Option) int {
	if d.next < len(d.Picks) {
		pick := d.Picks[d.next]
		d.next++
		if pick >= 0 && pick < len(options) && !options[pick].Disabled {
			return pick
		}
	}
	for i, opt := range options {
		if !opt.Disabled {
			return i
		}
	}
	return 0
}

// JourneyStats is the running ledger of the playthrough, rendered into
// the journey summary at the end.
type JourneyStats struct {
	DistanceTraveled int // miles
	LivesImpacted    int
	MoralChoices     int
	TraumaticEvents  int
	KeyEvents        []string
}

// AddDistance adds traveled miles.
func (j *JourneyStats) AddDistance(miles int) {
	j.DistanceTraveled += miles
}

// RecordLifeImpacted counts one person whose fate the player changed.
func (j *JourneyStats) RecordLifeImpacted() {
	j.LivesImpacted++
}

// RecordMoralChoice counts one moral decision made.
func (j *JourneyStats) RecordMoralChoice() {
	j.MoralChoices++
}

// RecordTrauma counts one traumatic event experienced.
func (j *JourneyStats) RecordTrauma() {
	j.TraumaticEvents++
}

// RecordKeyEvent appends to the key-event log, skipping an immediate
// repeat of the last entry.
func (j *JourneyStats) RecordKeyEvent(event string) {
	if n := len(j.KeyEvents); n > 0 && j.KeyEvents[n-1] == event {
		return
	}
	j.KeyEvents = append(j.KeyEvents, event)
}

// Context is the full state of one playthrough.
type Context struct {
	ID      uuid.UUID
	World   *world.World
	Player  *character.Character
	RNG     *rng.RNG
	Decider Decider
	Stats   JourneyStats
	Weather *types.Weather // active weather system, nil when calm

	MaxTurns int
	Turn     int
}

// New creates a session context. maxTurns bounds the journey; the engine
// ends the run when the count is exceeded.
func New(w *world.World, player *character.Character, r *rng.RNG, d Decider, maxTurns int) *Context {
	return &Context{
		ID:       uuid.New(),
		World:    w,
		Player:   player,
		RNG:      r,
		Decider:  d,
		MaxTurns: maxTurns,
	}
}

// Location returns the player's current location, or nil before placement.
func (s *Context) Location() *world.Location {
	return s.World.Get(s.Player.Location)
}

// TimeOfDay derives the time of day from the turn count on a six-turn
// cycle: dawn, three turns of day, dusk, night.
func (s *Context) TimeOfDay() types.TimeOfDay {
	switch s.Turn % 6 {
	case 0:
		return types.Dawn
	case 4:
		return types.Dusk
	case 5:
		return types.Night
	default:
		return types.Day
	}
}

// AdvanceTurn increments the turn counter and propagates the derived
// time of day to every location.
func (s *Context) AdvanceTurn() {
	s.Turn++
	t := s.TimeOfDay()
	for _, l := range s.World.Locations {
		l.SetTimeOfDay(t)
	}
}
