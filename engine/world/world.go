// Package world implements the location graph: an arena of Location
// records addressed by stable ID, with directed connections, per-variant
// environmental effects, and settlement services.
package world

import (
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/rng"
	"github.com/nathoo/borderline/types"
)

// DesertInfo is the variant data for desert locations.
type DesertInfo struct {
	WaterScarcity int // 0-10
}

// BorderInfo is the variant data for border locations.
type BorderInfo struct {
	PatrolIntensity int // 0-10
}

// SurveillanceLevel derives the detection chance from patrol intensity.
func (b *BorderInfo) SurveillanceLevel() int {
	return b.PatrolIntensity * 10
}

// SettlementInfo is the variant data for settlement locations.
type SettlementInfo struct {
	Population int
	Services   []string // "food", "shelter", "medical"
	Attitude   types.Attitude
}

// HasService reports whether the settlement offers a service.
func (s *SettlementInfo) HasService(service string) bool {
	for _, sv := range s.Services {
		if sv == service {
			return true
		}
	}
	return false
}

// AddService adds a service if not already offered.
func (s *SettlementInfo) AddService(service string) {
	if !s.HasService(service) {
		s.Services = append(s.Services, service)
	}
}

// Location is one node of the world graph. Locations are created once at
// world build and never destroyed; connections and contents mutate freely.
// At most one of Desert/Border/Settlement is non-nil.
type Location struct {
	ID          string
	Name        string
	Description string
	DangerLevel int               // 0-10
	Connections map[string]string // direction → location ID
	Characters  []*character.Character
	Items       []string
	Events      []*types.EventDef
	Environment map[string]any // "visibility" float64, "terrain", "temperature" strings
	TimeOfDay   types.TimeOfDay
	Visited     bool

	Desert     *DesertInfo
	Border     *BorderInfo
	Settlement *SettlementInfo
}

// Kind returns the location's variant kind.
func (l *Location) Kind() types.LocationKind {
	switch {
	case l.Desert != nil:
		return types.KindDesert
	case l.Border != nil:
		return types.KindBorder
	case l.Settlement != nil:
		return types.KindSettlement
	default:
		return types.KindGeneric
	}
}

func newLocation(id, name, description string, dangerLevel int) *Location {
	return &Location{
		ID:          id,
		Name:        name,
		Description: description,
		DangerLevel: dangerLevel,
		Connections: map[string]string{},
		Environment: map[string]any{},
		TimeOfDay:   types.Day,
	}
}

// NewLocation creates a generic location.
func NewLocation(id, name, description string, dangerLevel int) *Location {
	return newLocation(id, name, description, dangerLevel)
}

var desertItems = []string{
	"Cactus Fruit", "Empty Water Bottle", "Sun-Bleached Bone",
	"Abandoned Backpack", "Discarded Clothing",
}

// NewDesert creates a desert location, with a 30% chance of a scavengeable
// item left in the sand.
func NewDesert(id, name, description string, waterScarcity, dangerLevel int, r *rng.RNG) *Location {
	l := newLocation(id, name, description, dangerLevel)
	l.Desert = &DesertInfo{WaterScarcity: waterScarcity}
	l.SetEnvironment("terrain", "sandy")
	l.SetEnvironment("temperature", "extremely hot")
	if r.Chance(0.3) {
		l.AddItem(desertItems[r.Pick(len(desertItems))])
	}
	return l
}

var borderItems = []string{
	"Discarded Water Bottle", "Border Crossing Map", "Lost ID Card",
	"Surveillance Camera Parts", "Torn Clothing",
}

// NewBorder creates a border location with patrol presence.
func NewBorder(id, name, description string, patrolIntensity, dangerLevel int, r *rng.RNG) *Location {
	l := newLocation(id, name, description, dangerLevel)
	l.Border = &BorderInfo{PatrolIntensity: patrolIntensity}
	l.SetEnvironment("terrain", "varied")
	if r.Chance(0.3) {
		l.AddItem(borderItems[r.Pick(len(borderItems))])
	}
	return l
}

var settlementItems = []string{
	"Local Newspaper", "Food Voucher", "Maps", "Used Clothing", "Medicine",
}

var attitudes = []types.Attitude{types.Friendly, types.Neutral, types.Wary, types.Hostile}

// NewSettlement creates a settlement location. Local attitude is drawn at
// creation and fixed for the rest of the session.
func NewSettlement(id, name, description string, population, dangerLevel int, r *rng.RNG) *Location {
	l := newLocation(id, name, description, dangerLevel)
	l.Settlement = &SettlementInfo{
		Population: population,
		Attitude:   attitudes[r.Pick(len(attitudes))],
	}
	l.SetEnvironment("terrain", "urban")
	if r.Chance(0.4) {
		l.AddItem(settlementItems[r.Pick(len(settlementItems))])
	}
	return l
}

// Connect adds a directed connection. It is not reciprocal: callers add
// both directions when two-way travel is intended.
func (l *Location) Connect(direction, locationID string) {
	l.Connections[direction] = locationID
}

// AddCharacter places a character here and updates its back-reference.
func (l *Location) AddCharacter(c *character.Character) {
	l.Characters = append(l.Characters, c)
	c.Location = l.ID
}

// RemoveCharacter removes a character, clearing its back-reference if it
// still points here. Returns whether the character was present.
func (l *Location) RemoveCharacter(c *character.Character) bool {
	for i, ch := range l.Characters {
		if ch == c {
			l.Characters = append(l.Characters[:i], l.Characters[i+1:]...)
			if c.Location == l.ID {
				c.Location = ""
			}
			return true
		}
	}
	return false
}

// AddItem adds a pickupable item.
func (l *Location) AddItem(item string) {
	l.Items = append(l.Items, item)
}

// RemoveItem removes one instance of an item if present.
func (l *Location) RemoveItem(item string) bool {
	for i, it := range l.Items {
		if it == item {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether an item is present.
func (l *Location) HasItem(item string) bool {
	for _, it := range l.Items {
		if it == item {
			return true
		}
	}
	return false
}

// AddEvent registers an event template as eligible at this location.
func (l *Location) AddEvent(ev *types.EventDef) {
	l.Events = append(l.Events, ev)
}

// RandomEvent draws uniformly from the eligible event set, narrowed to the
// current time of day. An empty set yields nil, not an error.
func (l *Location) RandomEvent(r *rng.RNG) *types.EventDef {
	var eligible []*types.EventDef
	for _, ev := range l.Events {
		if timeAllowed(ev, l.TimeOfDay) {
			eligible = append(eligible, ev)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	return eligible[r.Pick(len(eligible))]
}

func timeAllowed(ev *types.EventDef, t types.TimeOfDay) bool {
	if len(ev.Times) == 0 {
		return true
	}
	for _, et := range ev.Times {
		if et == t {
			return true
		}
	}
	return false
}

// SetEnvironment sets an environmental factor.
func (l *Location) SetEnvironment(key string, value any) {
	l.Environment[key] = value
}

// SetTimeOfDay updates the time of day and the derived environmental
// factors: night drops visibility and temperature, day restores them.
func (l *Location) SetTimeOfDay(t types.TimeOfDay) {
	l.TimeOfDay = t
	switch t {
	case types.Night:
		l.SetEnvironment("visibility", 0.4)
		l.SetEnvironment("temperature", "cold")
	case types.Dawn, types.Dusk:
		l.SetEnvironment("visibility", 0.7)
	default:
		l.SetEnvironment("visibility", 1.0)
		l.SetEnvironment("temperature", "hot")
	}
}

// World is the arena of all locations, addressed by ID. The graph is
// shared and cyclic; locations never own each other.
type World struct {
	Locations map[string]*Location
}

// New creates an empty world.
func New() *World {
	return &World{Locations: map[string]*Location{}}
}

// Add registers a location in the arena.
func (w *World) Add(l *Location) {
	w.Locations[l.ID] = l
}

// Get returns a location by ID, or nil.
func (w *World) Get(id string) *Location {
	return w.Locations[id]
}

// Location IDs of the fixed world graph.
const (
	NogalesMX       = "nogales_mx"
	SonoranDesert   = "sonoran_desert"
	BorderWall      = "border_fence"
	NogalesUS       = "nogales_us"
	Tucson          = "tucson"
	DetentionCenter = "detention_center"
)

// Build constructs the fixed six-location border graph and seeds its
// non-player characters.
func Build(r *rng.RNG) *World {
	w := New()

	nogalesMX := NewSettlement(NogalesMX,
		"Nogales (Mexico)",
		"A border city in Sonora - where desperation and dreams collide.",
		212000, 4, r)
	nogalesMX.Settlement.AddService("food")
	nogalesMX.Settlement.AddService("shelter")

	desert := NewDesert(SonoranDesert,
		"Sonoran Desert",
		"A vast, unforgiving expanse where the border dissolves into sand and shadow.",
		9, 8, r)

	wall := NewBorder(BorderWall,
		"Border Wall",
		"A steel serpent cutting through the landscape - a symbol of division and hope, of policy and desperation.",
		8, 7, r)

	nogalesUS := NewSettlement(NogalesUS,
		"Nogales (USA)",
		"The American side of Nogales, in Arizona.",
		20000, 3, r)
	nogalesUS.Settlement.AddService("food")
	nogalesUS.Settlement.AddService("medical")

	tucson := NewSettlement(Tucson,
		"Tucson",
		"A major city in Arizona, about 70 miles north of the border.",
		545000, 2, r)
	tucson.Settlement.AddService("food")
	tucson.Settlement.AddService("shelter")
	tucson.Settlement.AddService("medical")

	detention := NewBorder(DetentionCenter,
		"Detention Center",
		"A facility where apprehended migrants are processed and detained.",
		10, 5, r)

	nogalesMX.Connect("north", BorderWall)
	nogalesMX.Connect("west", SonoranDesert)

	desert.Connect("east", NogalesMX)
	desert.Connect("north", BorderWall)

	wall.Connect("south", SonoranDesert)
	// Deliberately one-way: the wall offers a retreat into Nogales that
	// Nogales does not mirror from this direction.
	wall.Connect("southeast", NogalesMX)
	wall.Connect("north", NogalesUS)

	nogalesUS.Connect("south", BorderWall)
	nogalesUS.Connect("north", Tucson)
	nogalesUS.Connect("east", DetentionCenter)

	tucson.Connect("south", NogalesUS)

	detention.Connect("west", NogalesUS)

	for _, l := range []*Location{nogalesMX, desert, wall, nogalesUS, tucson, detention} {
		w.Add(l)
	}

	seedCharacters(w)
	return w
}

func seedCharacters(w *World) {
	coyote := character.New("Manuel",
		"A seasoned border smuggler who knows the desert routes.", 90)
	coyote.AddItem("Water Bottle")
	coyote.AddItem("Map")

	agent := character.NewAgent("Agent Hernandez",
		"A border patrol agent with Mexican heritage, conflicted about his role.",
		12, 100)

	elena := character.NewMigrant("Elena",
		"A young mother from Guatemala seeking asylum.",
		"Guatemala City",
		"Escaping gang violence and seeking a better life for her child.",
		80)
	elena.AddFamilyTie("Sofia", "daughter")
	elena.Migrant.Water = 60
	elena.Migrant.Food = 50

	w.Get(NogalesMX).AddCharacter(coyote)
	w.Get(BorderWall).AddCharacter(agent)
	w.Get(SonoranDesert).AddCharacter(elena)
}
