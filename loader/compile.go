package loader

import (
	"fmt"

	"github.com/nathoo/borderline/types"
	lua "github.com/yuin/gopher-lua"
)

// rawEvent holds an event table before compilation.
type rawEvent struct {
	kind  string // constructor name: "Encounter", "Resource", ...
	name  string
	table *lua.LTable
}

// rawDialogue holds a dialogue table before compilation.
type rawDialogue struct {
	character string
	table     *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getIntPtr returns an int field, or nil when the key is absent.
// Absence and zero mean different things for difficulty and trauma.
func getIntPtr(tbl *lua.LTable, key string) *int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		v := int(n)
		return &v
	}
	return nil
}

// getFloatPtr returns a float field, or nil when the key is absent.
func getFloatPtr(tbl *lua.LTable, key string) *float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		v := float64(n)
		return &v
	}
	return nil
}

// getBool returns a bool field from a Lua table, or false if missing.
func getBool(tbl *lua.LTable, key string) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList converts an array field to a string slice.
func stringList(tbl *lua.LTable, key string) []string {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	var out []string
	arr.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}

// boolMap converts a map field to map[string]bool.
func boolMap(tbl *lua.LTable, key string) map[string]bool {
	m := getTable(tbl, key)
	if m == nil {
		return nil
	}
	out := map[string]bool{}
	m.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if b, ok := v.(lua.LBool); ok {
			out[string(ks)] = bool(b)
		}
	})
	return out
}

// intMap converts a map field to map[string]int.
func intMap(tbl *lua.LTable) map[string]int {
	if tbl == nil {
		return nil
	}
	out := map[string]int{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if n, ok := v.(lua.LNumber); ok {
			out[string(ks)] = int(n)
		}
	})
	return out
}

// compile converts collected raw tables into content defs.
func compile(coll *collector) (*types.Content, error) {
	content := &types.Content{Quotes: coll.quotes}

	for _, raw := range coll.events {
		ev, err := compileEvent(raw)
		if err != nil {
			return nil, err
		}
		content.Events = append(content.Events, ev)
	}

	for _, raw := range coll.dialogue {
		content.Dialogue = append(content.Dialogue, types.DialogueDef{
			Character:  raw.character,
			PlayerKind: getString(raw.table, "player_kind"),
			Lines:      stringList(raw.table, "lines"),
		})
	}

	for _, tbl := range coll.flavor {
		content.Flavor = append(content.Flavor, types.FlavorEventDef{
			Kind:        getString(tbl, "kind"),
			Description: getString(tbl, "description"),
			Flavor:      getString(tbl, "flavor"),
		})
	}

	for _, tbl := range coll.locationFlavor {
		content.LocationFlavor = append(content.LocationFlavor, types.LocationFlavorDef{
			Kind:  types.LocationKind(getString(tbl, "kind")),
			Name:  getString(tbl, "name"),
			Lines: stringList(tbl, "lines"),
		})
	}

	return content, nil
}

func compileEvent(raw rawEvent) (types.EventDef, error) {
	tbl := raw.table
	ev := types.EventDef{
		Name:        raw.name,
		Description: getString(tbl, "description"),
		Required:    boolMap(tbl, "required"),
		Excluded:    boolMap(tbl, "excluded"),
	}
	for _, l := range stringList(tbl, "locations") {
		ev.Locations = append(ev.Locations, types.LocationKind(l))
	}
	for _, t := range stringList(tbl, "times") {
		ev.Times = append(ev.Times, types.TimeOfDay(t))
	}

	switch raw.kind {
	case "Encounter":
		ev.Kind = types.EventEncounter
		ev.Encounter = &types.EncounterPayload{
			Type:     types.EncounterType(getString(tbl, "type")),
			Dialogue: stringList(tbl, "dialogue"),
			Choices:  compileChoices(getTable(tbl, "choices")),
		}
	case "Resource":
		ev.Kind = types.EventResource
		ev.Resource = &types.ResourcePayload{
			Type:       types.ResourceType(getString(tbl, "type")),
			Amount:     getInt(tbl, "amount"),
			Difficulty: getIntPtr(tbl, "difficulty"),
		}
	case "Crossing":
		ev.Kind = types.EventCrossing
		ev.Crossing = &types.CrossingPayload{
			Methods: compileMethods(getTable(tbl, "methods")),
		}
	case "Moral":
		ev.Kind = types.EventMoral
		moralType := getString(tbl, "type")
		if moralType == "" {
			moralType = "moral"
		}
		ev.Moral = &types.MoralPayload{
			Type:         moralType,
			Choices:      stringList(tbl, "choices"),
			Consequences: compileConsequences(getTable(tbl, "consequences")),
		}
	case "Weather":
		ev.Kind = types.EventWeather
		effects := getTable(tbl, "effects")
		payload := &types.WeatherPayload{
			Type:     getString(tbl, "type"),
			Duration: getInt(tbl, "duration"),
		}
		if effects != nil {
			payload.Effects = types.WeatherEffects{
				ImmediateWater:  getInt(effects, "immediate_water"),
				ImmediateHealth: getInt(effects, "immediate_health"),
				Visibility:      getFloatPtr(effects, "visibility"),
				Terrain:         getString(effects, "terrain"),
				Temperature:     getString(effects, "temperature"),
				WaterDrain:      getNumber(effects, "water_drain"),
			}
		}
		ev.Weather = payload
	case "Trauma":
		ev.Kind = types.EventTrauma
		ev.Trauma = &types.TraumaPayload{
			Level:  getInt(tbl, "level"),
			Impact: intMap(getTable(tbl, "impact")),
		}
	default:
		return ev, fmt.Errorf("event %q: unknown constructor %q", raw.name, raw.kind)
	}
	return ev, nil
}

func compileChoices(tbl *lua.LTable) []types.ChoiceDef {
	if tbl == nil {
		return nil
	}
	var out []types.ChoiceDef
	tbl.ForEach(func(_, v lua.LValue) {
		c, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		out = append(out, types.ChoiceDef{
			Label:       getString(c, "label"),
			Description: getString(c, "description"),
			Impacts:     intMap(getTable(c, "impacts")),
			Flags:       boolMap(c, "flags"),
		})
	})
	return out
}

func compileMethods(tbl *lua.LTable) []types.CrossingMethod {
	if tbl == nil {
		return nil
	}
	var out []types.CrossingMethod
	tbl.ForEach(func(_, v lua.LValue) {
		m, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		out = append(out, types.CrossingMethod{
			Name:          getString(m, "name"),
			Description:   getString(m, "description"),
			SuccessChance: getInt(m, "success_chance"),
			HealthRisk:    getInt(m, "health_risk"),
			MoneyCost:     getInt(m, "money_cost"),
			RequiredItem:  getString(m, "required_item"),
			OnSuccess:     getString(m, "on_success"),
			OnFailure:     getString(m, "on_failure"),
		})
	})
	return out
}

func compileConsequences(tbl *lua.LTable) []types.ConsequenceDef {
	if tbl == nil {
		return nil
	}
	var out []types.ConsequenceDef
	tbl.ForEach(func(_, v lua.LValue) {
		c, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		out = append(out, types.ConsequenceDef{
			Description:  getString(c, "description"),
			HopeImpact:   getInt(c, "hope_impact"),
			MoralImpact:  getInt(c, "moral_impact"),
			StressImpact: getInt(c, "stress_impact"),
			HealthImpact: getInt(c, "health_impact"),
			TraumaImpact: getIntPtr(c, "trauma_impact"),
			Flags:        boolMap(c, "flags"),
			ImpactOthers: getBool(c, "impact_others"),
		})
	})
	return out
}
