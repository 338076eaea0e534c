// Package types defines the shared data structures for the Borderline engine.
// This package contains only type definitions — no logic, no methods.
package types

// TimeOfDay is one of the four phases of the day/night cycle.
type TimeOfDay string

const (
	Dawn  TimeOfDay = "dawn"
	Day   TimeOfDay = "day"
	Dusk  TimeOfDay = "dusk"
	Night TimeOfDay = "night"
)

// AllTimes lists every time of day, in cycle order.
var AllTimes = []TimeOfDay{Dawn, Day, Dusk, Night}

// LocationKind identifies a location variant.
type LocationKind string

const (
	KindGeneric    LocationKind = "generic"
	KindDesert     LocationKind = "desert"
	KindBorder     LocationKind = "border"
	KindSettlement LocationKind = "settlement"
)

// Attitude is a settlement's disposition toward strangers, fixed at creation.
type Attitude string

const (
	Friendly Attitude = "friendly"
	Neutral  Attitude = "neutral"
	Wary     Attitude = "wary"
	Hostile  Attitude = "hostile"
)

// EventKind identifies an event variant.
type EventKind string

const (
	EventEncounter EventKind = "encounter"
	EventResource  EventKind = "resource"
	EventCrossing  EventKind = "crossing"
	EventMoral     EventKind = "moral"
	EventWeather   EventKind = "weather"
	EventTrauma    EventKind = "trauma"
)

// EncounterType classifies who or what is encountered.
type EncounterType string

const (
	EncounterMigrant  EncounterType = "migrant"
	EncounterPatrol   EncounterType = "patrol"
	EncounterLocal    EncounterType = "local"
	EncounterWildlife EncounterType = "wildlife"
)

// ResourceType classifies what a resource event gives or takes.
type ResourceType string

const (
	ResourceWater  ResourceType = "water"
	ResourceFood   ResourceType = "food"
	ResourceHealth ResourceType = "health"
	ResourceMoney  ResourceType = "money"
	ResourceItem   ResourceType = "item"
)

// ChoiceDef is one selectable option in an encounter, with its consequence.
type ChoiceDef struct {
	Label       string
	Description string
	Impacts     map[string]int // stat name → signed delta
	Flags       map[string]bool
}

// EncounterPayload is the variant data for an encounter event.
type EncounterPayload struct {
	Type     EncounterType
	Dialogue []string
	Choices  []ChoiceDef // empty → type-specific default deltas apply
}

// ResourcePayload is the variant data for a resource event.
type ResourcePayload struct {
	Type       ResourceType
	Amount     int  // signed: positive gain, negative loss
	Difficulty *int // nil → no check, deterministic success
}

// CrossingMethod is one way of attempting to cross the border wall.
type CrossingMethod struct {
	Name          string
	Description   string
	SuccessChance int // percent
	HealthRisk    int // ×1.5 on failure
	MoneyCost     int
	RequiredItem  string
	OnSuccess     string
	OnFailure     string
}

// CrossingPayload is the variant data for a border-crossing event.
type CrossingPayload struct {
	Methods []CrossingMethod
}

// ConsequenceDef is the outcome of one moral choice.
type ConsequenceDef struct {
	Description  string
	HopeImpact   int
	MoralImpact  int
	StressImpact int
	HealthImpact int
	TraumaImpact *int // nil → derived from hope loss for survival/loyalty events
	Flags        map[string]bool
	ImpactOthers bool
}

// MoralPayload is the variant data for a moral event. Choices and
// Consequences are parallel lists.
type MoralPayload struct {
	Type         string // "moral", "survival", "loyalty"
	Choices      []string
	Consequences []ConsequenceDef
}

// WeatherEffects holds both immediate vital deltas and ongoing
// environment overrides pushed onto the current location.
type WeatherEffects struct {
	ImmediateWater  int
	ImmediateHealth int
	Visibility      *float64
	Terrain         string
	Temperature     string
	WaterDrain      float64
}

// WeatherPayload is the variant data for a weather event.
type WeatherPayload struct {
	Type     string
	Duration int // turns
	Effects  WeatherEffects
}

// TraumaPayload is the variant data for a trauma event.
type TraumaPayload struct {
	Level  int            // 1-10 severity
	Impact map[string]int // secondary deltas: "health", "stress"
}

// EventDef is an immutable event template, shared across eligible locations.
// Exactly one variant payload is non-nil, matching Kind.
type EventDef struct {
	Name        string
	Description string
	Kind        EventKind
	Locations   []LocationKind  // empty → any location
	Required    map[string]bool // story flags that must match
	Excluded    map[string]bool // story flags that must not match
	Times       []TimeOfDay     // empty → any time

	Encounter *EncounterPayload
	Resource  *ResourcePayload
	Crossing  *CrossingPayload
	Moral     *MoralPayload
	Weather   *WeatherPayload
	Trauma    *TraumaPayload
}

// Weather is the session-scoped ambient weather set by a weather event.
type Weather struct {
	Name        string
	Description string
	Effects     WeatherEffects
	Duration    int
}

// DialogueDef is a pool of spoken lines for a named character.
type DialogueDef struct {
	Character  string
	PlayerKind string // "migrant", "patrol", or "" for either
	Lines      []string
}

// FlavorEventDef is a purely narrative random event for one player kind.
type FlavorEventDef struct {
	Kind        string // "migrant" or "patrol"
	Description string
	Flavor      string
}

// LocationFlavorDef is a pool of thematic quotes for a location kind,
// optionally narrowed to a single named location.
type LocationFlavorDef struct {
	Kind  LocationKind
	Name  string // "" → any location of Kind
	Lines []string
}

// Content is the full compiled game content loaded from Lua.
type Content struct {
	Events         []EventDef
	Dialogue       []DialogueDef
	Flavor         []FlavorEventDef
	LocationFlavor []LocationFlavorDef
	Quotes         []string
}
