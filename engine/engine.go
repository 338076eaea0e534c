// Package engine drives one playthrough: world setup, the per-turn
// pipeline of environmental effects and resource drain, random narrative
// events, command dispatch, and the end-of-game checks. Front ends own
// the input loop and rendering; the engine owns all game state.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/nathoo/borderline/config"
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/rng"
	"github.com/nathoo/borderline/engine/session"
	"github.com/nathoo/borderline/engine/world"
	"github.com/nathoo/borderline/matcher"
	"github.com/nathoo/borderline/story"
	"github.com/nathoo/borderline/types"
)

// Options configures a new playthrough. Content and Matcher may be nil;
// zero player fields fall back to role defaults.
type Options struct {
	Config  config.Config
	Content *types.Content
	Decider session.Decider
	Matcher *matcher.Client

	PlayerName     string
	PlayerKind     character.Kind
	Description    string
	Origin         string
	Motivation     string
	YearsOfService int
	Seed           int64 // overrides Config.Seed when non-zero
}

// Engine is the game loop state machine.
type Engine struct {
	Session *session.Context
	Story   *story.Provider
	Matcher *matcher.Client
	Mods    config.Difficulty

	over   bool
	ending string
}

// New builds the world, creates the player, attaches content events to
// eligible locations, and returns an engine ready for the first turn.
func New(opts Options) (*Engine, error) {
	if opts.Decider == nil {
		return nil, fmt.Errorf("engine: a decider is required")
	}

	cfg := opts.Config
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = config.Default().MaxTurns
	}
	if _, ok := config.DifficultyModifiers[cfg.Difficulty]; !ok {
		cfg.Difficulty = "normal"
	}
	mods := cfg.Modifiers()

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rng.New(seed)

	w := world.Build(r)
	scalePatrols(w, mods.PatrolIntensity)
	attachEvents(w, opts.Content)

	player, err := newPlayer(opts)
	if err != nil {
		return nil, err
	}
	scaleStartingResources(player, mods.StartingResources)

	start := w.Get(world.NogalesMX)
	start.AddCharacter(player)
	start.Visited = true

	return &Engine{
		Session: session.New(w, player, r, opts.Decider, cfg.MaxTurns),
		Story:   story.New(opts.Content, r),
		Matcher: opts.Matcher,
		Mods:    mods,
	}, nil
}

func newPlayer(opts Options) (*character.Character, error) {
	name := opts.PlayerName
	if name == "" {
		name = "Traveler"
	}

	switch opts.PlayerKind {
	case character.KindMigrant:
		desc := opts.Description
		if desc == "" {
			desc = "A migrant seeking a better life in the United States."
		}
		origin := opts.Origin
		if origin == "" {
			origin = "Central Mexico"
		}
		motivation := opts.Motivation
		if motivation == "" {
			motivation = "Economic opportunity and safety."
		}
		p := character.NewMigrant(name, desc, origin, motivation, 100)
		p.AddItem("Water Bottle")
		p.AddItem("Family Photo")
		p.AddItem("Canned Food")
		return p, nil

	case character.KindAgent:
		desc := opts.Description
		if desc == "" {
			desc = "A border patrol agent working the southern border."
		}
		years := opts.YearsOfService
		if years <= 0 {
			years = 5
		}
		p := character.NewAgent(name, desc, years, 100)
		p.SetFlag("is_border_patrol", true)
		p.AddItem("Flashlight")
		p.AddItem("Radio")
		p.AddItem("Water Bottle")
		p.AddItem("Canned Food")
		return p, nil
	}

	return nil, fmt.Errorf("engine: unknown player kind %q", opts.PlayerKind)
}

func scaleStartingResources(p *character.Character, factor float64) {
	if factor <= 0 || factor == 1 {
		return
	}
	scale := func(v int) int {
		n := int(float64(v) * factor)
		if n > 100 {
			n = 100
		}
		return n
	}
	switch {
	case p.Migrant != nil:
		p.Migrant.Water = scale(p.Migrant.Water)
		p.Migrant.Food = scale(p.Migrant.Food)
	case p.Agent != nil:
		p.Agent.Water = scale(p.Agent.Water)
		p.Agent.Food = scale(p.Agent.Food)
	}
	p.Money = int(float64(p.Money) * factor)
}

func scalePatrols(w *world.World, factor float64) {
	if factor <= 0 || factor == 1 {
		return
	}
	for _, l := range w.Locations {
		if l.Border == nil {
			continue
		}
		pi := int(float64(l.Border.PatrolIntensity)*factor + 0.5)
		if pi < 0 {
			pi = 0
		}
		if pi > 10 {
			pi = 10
		}
		l.Border.PatrolIntensity = pi
	}
}

// attachEvents registers each event at every location whose kind it
// names. Time-of-day eligibility is checked when events are drawn, not
// here: times change every turn, attachment doesn't.
func attachEvents(w *world.World, content *types.Content) {
	if content == nil {
		return
	}
	for i := range content.Events {
		ev := &content.Events[i]
		for _, l := range w.Locations {
			if kindAllowed(ev, l) {
				l.AddEvent(ev)
			}
		}
	}
}

func kindAllowed(ev *types.EventDef, l *world.Location) bool {
	if len(ev.Locations) == 0 {
		return true
	}
	for _, k := range ev.Locations {
		if l.Kind() == k {
			return true
		}
	}
	return false
}

// Intro returns the opening narration, the starting location description,
// and the help hint.
func (e *Engine) Intro() string {
	loc := e.Session.Location()
	return e.Story.Intro(loc.Name) + "\n\n" +
		loc.Describe(true, e.Session.World, e.Session.Player) +
		"\n\nType 'help' for available commands."
}

// BeginTurn runs the start-of-turn pipeline: time narration at phase
// changes, location effects, resource consumption, weather expiry, the
// end-of-game check, and random narrative events. It returns the text to
// show before the next prompt; when the game ends mid-pipeline the text
// ends with the ending message.
func (e *Engine) BeginTurn() string {
	if e.over {
		return ""
	}
	s := e.Session
	var parts []string

	switch s.Turn % 6 {
	case 0, 4, 5:
		parts = append(parts, e.Story.TimeOfDay(s.Turn))
	}

	if loc := s.Location(); loc != nil {
		if msg := loc.ApplyEffects(s.Player, s.RNG); msg != "" {
			parts = append(parts, msg)
		}
	}
	if msg := e.consumeResources(); msg != "" {
		parts = append(parts, msg)
	}
	e.tickWeather()

	if e.checkGameOver() {
		parts = append(parts, e.EndingMessage())
		return strings.Join(parts, "\n")
	}

	parts = append(parts, e.randomEvents()...)
	return strings.Join(parts, "\n")
}

func (e *Engine) consumeResources() string {
	s := e.Session
	p := s.Player
	loc := s.Location()

	var water, food int
	switch {
	case p.Migrant != nil:
		water, food = 5, 5
		switch {
		case loc.Desert != nil:
			water += loc.Desert.WaterScarcity / 2
			food += 2
		case loc.Settlement != nil && loc.Settlement.HasService("food"):
			food -= 3
			if food < 0 {
				food = 0
			}
		}
	case p.Agent != nil:
		water, food = 3, 3
		if loc.Desert != nil {
			water += loc.Desert.WaterScarcity / 3
			food++
		}
	default:
		return ""
	}

	if f := e.Mods.ResourceConsumption; f > 0 && f != 1 {
		water = int(float64(water) * f)
		food = int(float64(food) * f)
	}
	if w := s.Weather; w != nil && w.Effects.WaterDrain > 0 && w.Effects.WaterDrain != 1 {
		water = int(float64(water) * w.Effects.WaterDrain)
	}

	msg := p.ConsumeResources(water, food)
	if p.Migrant != nil {
		p.SetFlag("water_critical", p.Migrant.Water < 20)
	}
	return msg
}

// tickWeather counts an active weather system down and clears it when it
// blows over, restoring the time-of-day environment baseline.
func (e *Engine) tickWeather() {
	w := e.Session.Weather
	if w == nil {
		return
	}
	w.Duration--
	if w.Duration > 0 {
		return
	}
	e.Session.Weather = nil
	if loc := e.Session.Location(); loc != nil {
		loc.SetTimeOfDay(loc.TimeOfDay)
	}
}

func (e *Engine) eventChance(base float64) float64 {
	if e.Mods.EventChance != 0 {
		base *= e.Mods.EventChance
	}
	return base
}

func (e *Engine) randomEvents() []string {
	s := e.Session
	var out []string

	// Flavor events are purely narrative but still land in the ledger.
	if s.RNG.Chance(e.eventChance(0.15)) {
		if fl, ok := e.Story.FlavorEvent(s.Player.Kind()); ok {
			out = append(out, fl.Description+"\n"+fl.Flavor)
			s.Stats.RecordKeyEvent(fl.Description)
		}
	}

	if s.RNG.Chance(e.eventChance(0.05)) {
		tm := e.Story.RandomTrauma()
		text := tm.Description + "\n" + tm.Reflection
		s.Stats.RecordTrauma()
		if msg := s.Player.ChangeHope(-10); msg != "" {
			text += "\n" + msg
		}
		if s.Player.ApplyStat("stress", 15) {
			text += fmt.Sprintf("\n%s's stress increases due to the traumatic experience.", s.Player.Name)
		}
		out = append(out, text)
	}

	if s.RNG.Chance(e.eventChance(0.08)) {
		if msg := e.presentDilemma(); msg != "" {
			out = append(out, msg)
		}
	}

	return out
}

// presentDilemma puts a role-specific moral dilemma to the player and
// applies the chosen consequence.
func (e *Engine) presentDilemma() string {
	s := e.Session
	d, ok := e.Story.RandomDilemma(s.Player.Kind())
	if !ok {
		return ""
	}

	options := make([]session.Option, len(d.Choices))
	for i, c := range d.Choices {
		options[i] = session.Option{Label: c}
	}
	idx := s.Decider.Choose(d.Description, options)
	out := d.Consequences[idx]

	s.Player.ApplyStat("hope", out.HopeImpact)
	s.Player.ApplyStat("health", out.HealthImpact)
	s.Player.ApplyStat("moral_compass", out.MoralImpact)
	s.Player.ApplyStat("stress", out.StressImpact)
	if out.Flag != "" {
		s.Player.SetFlag(out.Flag, true)
	}

	s.Stats.RecordMoralChoice()
	s.Stats.RecordKeyEvent(d.Choices[idx])

	return fmt.Sprintf("%s\n\nYou chose: %s\n%s", d.Description, d.Choices[idx], out.Description)
}

// checkGameOver evaluates the terminal conditions in priority order and
// latches the first that holds.
func (e *Engine) checkGameOver() bool {
	if e.over {
		return true
	}
	s := e.Session
	loc := s.Location()

	water, hasWater := s.Player.Stat("water")
	switch {
	case s.Player.Health <= 0:
		e.ending = story.EndingDeath
	case hasWater && water <= 0:
		e.ending = story.EndingDeath
	case loc != nil && loc.ID == world.Tucson:
		e.ending = story.EndingSuccess
	case loc != nil && loc.ID == world.DetentionCenter && s.Player.Migrant != nil:
		e.ending = story.EndingDetained
	case s.Turn >= s.MaxTurns:
		e.ending = story.EndingTimeout
	default:
		return false
	}
	e.over = true
	return true
}

// Over reports whether the playthrough has ended.
func (e *Engine) Over() bool {
	return e.over
}

// Ending returns the ending type, or "" while the game is running.
func (e *Engine) Ending() string {
	return e.ending
}

// EndingMessage returns the short closing line for how the game ended.
func (e *Engine) EndingMessage() string {
	if !e.over {
		return "The journey continues..."
	}
	switch e.ending {
	case story.EndingDeath:
		return "Your journey has come to a tragic end. The border crossing claimed another life."
	case story.EndingSuccess:
		return "You've successfully reached Tucson. While challenges remain, you've completed the most dangerous part of your journey."
	case story.EndingDetained:
		return "You've been detained by Border Patrol. You'll be processed and your fate now lies within the immigration system."
	case story.EndingTimeout:
		return "Your journey has taken too long. Resources depleted, you can go no further."
	}
	return "Your journey has ended."
}

// Summary renders the journey ledger.
func (e *Engine) Summary() string {
	return e.Story.JourneySummary(e.Session.Player, &e.Session.Stats)
}

// EndingText renders the full epilogue for the recorded ending.
func (e *Engine) EndingText() string {
	ending := e.ending
	if ending == "" {
		ending = "general"
	}
	return e.Story.Ending(ending, e.Session.Player)
}

// GracefulExit renders the text shown when the player quits mid-journey.
func (e *Engine) GracefulExit() string {
	return e.Summary() +
		"\n\nYour journey along the borderlands remains unfinished." +
		"\nLike many stories of the border, it ends without clear resolution."
}
