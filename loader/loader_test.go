package loader

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/nathoo/borderline/types"
)

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const fullContent = `
Encounter "Migrant Family" {
  description = "A family resting in the shade of a rock formation.",
  locations = {"desert"},
  type = "migrant",
  dialogue = {"Please, do you have water?"},
  choices = {
    {label = "Share your supplies", description = "You give what you can.",
     impacts = {hope = 10, water = -20}, flags = {helped_family = true}},
    {label = "Keep moving", description = "You cannot afford to stop.",
     impacts = {hope = -5}},
  },
}

Resource "Water Cache" {
  description = "Plastic jugs hidden under a creosote bush.",
  locations = {"desert"},
  type = "water",
  amount = 30,
  difficulty = 20,
}

Resource "Severe Dehydration" {
  description = "The heat takes its toll.",
  locations = {"desert"},
  times = {"day"},
  type = "water",
  amount = -25,
}

Crossing "The Wall" {
  description = "The border wall looms ahead.",
  locations = {"border"},
  methods = {
    {name = "Climb the wall", description = "Scale the barrier directly.",
     success_chance = 40, health_risk = 15,
     on_success = "You make it over.", on_failure = "You fall hard."},
    {name = "Pay a coyote", description = "Hire a guide.",
     success_chance = 70, health_risk = 10, money_cost = 50,
     on_success = "The guide knows a gap.", on_failure = "The guide vanishes."},
    {name = "Cut through the fence", description = "Use wire cutters.",
     success_chance = 50, health_risk = 10, required_item = "Wire Cutters",
     on_success = "You slip through.", on_failure = "A sensor trips."},
  },
}

Moral "Abandoned Child" {
  description = "A child sits alone by the trail.",
  locations = {"desert"},
  type = "survival",
  choices = {"Take the child with you", "Leave the child"},
  consequences = {
    {description = "The child slows you down but you cannot regret it.",
     hope_impact = 10, health_impact = -10, flags = {saved_child = true}, impact_others = true},
    {description = "You walk on. The crying fades behind you.",
     hope_impact = -20, trauma_impact = 15},
  },
}

Weather "Dust Storm" {
  description = "A wall of dust approaches rapidly.",
  locations = {"desert"},
  type = "dust_storm",
  duration = 2,
  effects = {immediate_health = -10, visibility = 0.2, water_drain = 1.5},
}

Trauma "Human Remains" {
  description = "You discover human remains partially buried in the sand.",
  locations = {"desert"},
  level = 8,
  impact = {health = -5},
}

Dialogue "Manuel" {
  player_kind = "migrant",
  lines = {"I know every wash and ridge for fifty miles."},
}

Flavor {
  kind = "migrant",
  description = "A helicopter spotlight sweeps across your position.",
  flavor = "You press your body against the earth.",
}

LocationFlavor {
  kind = "desert",
  lines = {"The desert stretches endlessly."},
}

Quote "The border makes ghosts of us all."
`

func TestLoad_FullContent(t *testing.T) {
	dir := writeContent(t, map[string]string{"events.lua": fullContent})
	content, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(content.Events) != 7 {
		t.Fatalf("expected 7 events, got %d", len(content.Events))
	}

	byName := map[string]types.EventDef{}
	for _, ev := range content.Events {
		byName[ev.Name] = ev
	}

	enc := byName["Migrant Family"]
	if enc.Kind != types.EventEncounter || enc.Encounter == nil {
		t.Fatalf("Migrant Family: wrong kind %q", enc.Kind)
	}
	if enc.Encounter.Type != types.EncounterMigrant {
		t.Errorf("encounter type = %q", enc.Encounter.Type)
	}
	if len(enc.Encounter.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(enc.Encounter.Choices))
	}
	share := enc.Encounter.Choices[0]
	if share.Label != "Share your supplies" || share.Impacts["hope"] != 10 || share.Impacts["water"] != -20 {
		t.Errorf("choice compiled wrong: %+v", share)
	}
	if !share.Flags["helped_family"] {
		t.Error("choice flags missing helped_family")
	}
	if len(enc.Locations) != 1 || enc.Locations[0] != types.KindDesert {
		t.Errorf("locations = %v", enc.Locations)
	}

	cache := byName["Water Cache"]
	if cache.Resource == nil || cache.Resource.Amount != 30 {
		t.Fatalf("Water Cache resource: %+v", cache.Resource)
	}
	if cache.Resource.Difficulty == nil || *cache.Resource.Difficulty != 20 {
		t.Error("Water Cache difficulty should be 20")
	}

	dehydration := byName["Severe Dehydration"]
	if dehydration.Resource.Difficulty != nil {
		t.Error("absent difficulty must compile to nil, not zero")
	}
	if dehydration.Resource.Amount != -25 {
		t.Errorf("amount = %d", dehydration.Resource.Amount)
	}
	if len(dehydration.Times) != 1 || dehydration.Times[0] != types.Day {
		t.Errorf("times = %v", dehydration.Times)
	}

	wall := byName["The Wall"]
	if len(wall.Crossing.Methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(wall.Crossing.Methods))
	}
	coyote := wall.Crossing.Methods[1]
	if coyote.MoneyCost != 50 || coyote.SuccessChance != 70 {
		t.Errorf("coyote method: %+v", coyote)
	}
	if wall.Crossing.Methods[2].RequiredItem != "Wire Cutters" {
		t.Error("fence method missing required item")
	}

	moral := byName["Abandoned Child"]
	if moral.Moral.Type != "survival" {
		t.Errorf("moral type = %q", moral.Moral.Type)
	}
	if len(moral.Moral.Choices) != 2 || len(moral.Moral.Consequences) != 2 {
		t.Fatal("moral choices/consequences not parallel")
	}
	leave := moral.Moral.Consequences[1]
	if leave.TraumaImpact == nil || *leave.TraumaImpact != 15 {
		t.Error("explicit trauma_impact lost")
	}
	take := moral.Moral.Consequences[0]
	if take.TraumaImpact != nil {
		t.Error("absent trauma_impact must compile to nil")
	}
	if !take.ImpactOthers {
		t.Error("impact_others lost")
	}

	storm := byName["Dust Storm"]
	if storm.Weather.Duration != 2 || storm.Weather.Effects.ImmediateHealth != -10 {
		t.Errorf("weather payload: %+v", storm.Weather)
	}
	if v := storm.Weather.Effects.Visibility; v == nil || *v != 0.2 {
		t.Error("weather visibility lost")
	}
	if storm.Weather.Effects.WaterDrain != 1.5 {
		t.Errorf("water drain = %v", storm.Weather.Effects.WaterDrain)
	}

	remains := byName["Human Remains"]
	if remains.Trauma.Level != 8 || remains.Trauma.Impact["health"] != -5 {
		t.Errorf("trauma payload: %+v", remains.Trauma)
	}

	if len(content.Dialogue) != 1 || content.Dialogue[0].Character != "Manuel" {
		t.Errorf("dialogue = %+v", content.Dialogue)
	}
	if len(content.Flavor) != 1 || content.Flavor[0].Kind != "migrant" {
		t.Errorf("flavor = %+v", content.Flavor)
	}
	if len(content.LocationFlavor) != 1 || content.LocationFlavor[0].Kind != types.KindDesert {
		t.Errorf("location flavor = %+v", content.LocationFlavor)
	}
	if len(content.Quotes) != 1 {
		t.Errorf("quotes = %v", content.Quotes)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"events.lua": &fstest.MapFile{Data: []byte(fullContent)},
	}
	content, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if len(content.Events) != 7 {
		t.Errorf("expected 7 events, got %d", len(content.Events))
	}
}

func TestLoad_MultipleFiles(t *testing.T) {
	dir := writeContent(t, map[string]string{
		"a.lua": `Quote "first"`,
		"b.lua": `Quote "second"`,
	})
	content, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Alphabetical file order keeps quote order stable.
	if len(content.Quotes) != 2 || content.Quotes[0] != "first" {
		t.Errorf("quotes = %v", content.Quotes)
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for directory without .lua files")
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	dir := writeContent(t, map[string]string{"bad.lua": `Quote "unterminated`})
	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid Lua")
	}
}

func TestLoad_Sandbox(t *testing.T) {
	dir := writeContent(t, map[string]string{
		"escape.lua": `dofile("/etc/passwd")`,
	})
	if _, err := Load(dir); err == nil {
		t.Error("dofile must be unavailable in the sandbox")
	}

	dir = writeContent(t, map[string]string{
		"os.lua": `os.execute("true")`,
	})
	if _, err := Load(dir); err == nil {
		t.Error("os library must be unavailable in the sandbox")
	}
}
