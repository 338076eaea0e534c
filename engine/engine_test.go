package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/borderline/config"
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/session"
	"github.com/nathoo/borderline/engine/world"
	"github.com/nathoo/borderline/story"
)

func newTestEngine(t *testing.T, kind character.Kind, picks ...int) *Engine {
	t.Helper()
	e, err := New(Options{
		Config:     config.Default(),
		Decider:    &session.ScriptDecider{Picks: picks},
		PlayerName: "Alma",
		PlayerKind: kind,
		Seed:       42,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// relocate moves the player directly, bypassing the command layer.
func relocate(e *Engine, locationID string) {
	e.Session.Location().RemoveCharacter(e.Session.Player)
	e.Session.World.Get(locationID).AddCharacter(e.Session.Player)
}

func TestNew_Migrant(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	p := e.Session.Player

	if p.Migrant == nil {
		t.Fatal("player should be a migrant")
	}
	if loc := e.Session.Location(); loc == nil || loc.ID != world.NogalesMX {
		t.Errorf("starting location = %v, want nogales_mx", p.Location)
	}
	for _, item := range []string{"Water Bottle", "Family Photo", "Canned Food"} {
		if !p.HasItem(item) {
			t.Errorf("missing starting item %s", item)
		}
	}
	if p.HasFlag("is_border_patrol") {
		t.Error("migrant should not carry the patrol flag")
	}
}

func TestNew_Agent(t *testing.T) {
	e := newTestEngine(t, character.KindAgent)
	p := e.Session.Player

	if p.Agent == nil {
		t.Fatal("player should be an agent")
	}
	if !p.HasFlag("is_border_patrol") {
		t.Error("agent should carry the patrol flag")
	}
	for _, item := range []string{"Flashlight", "Radio", "Water Bottle", "Canned Food"} {
		if !p.HasItem(item) {
			t.Errorf("missing starting item %s", item)
		}
	}
	if p.Agent.YearsOfService != 5 {
		t.Errorf("default years of service = %d, want 5", p.Agent.YearsOfService)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Options{PlayerKind: character.KindMigrant}); err == nil {
		t.Error("missing decider should fail")
	}
	if _, err := New(Options{Decider: &session.ScriptDecider{}, PlayerKind: "ghost"}); err == nil {
		t.Error("unknown player kind should fail")
	}
}

func TestNew_EasyScalesMoney(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty = "easy"
	e, err := New(Options{
		Config:     cfg,
		Decider:    &session.ScriptDecider{},
		PlayerKind: character.KindMigrant,
		Seed:       7,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Session.Player.Money != 130 {
		t.Errorf("easy starting money = %d, want 130", e.Session.Player.Money)
	}
	if e.Session.Player.Migrant.Water != 100 {
		t.Errorf("water should clamp at 100, got %d", e.Session.Player.Migrant.Water)
	}
}

func TestMove(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)

	result, quit := e.Command("move north")
	if quit {
		t.Fatal("move should not quit")
	}
	if !strings.Contains(result, "You travel north to Border Wall.") {
		t.Errorf("result = %q", result)
	}
	if loc := e.Session.Location(); loc.ID != world.BorderWall {
		t.Errorf("location = %s, want border_fence", loc.ID)
	}
	if e.Session.Turn != 1 {
		t.Errorf("turn = %d, want 1", e.Session.Turn)
	}
	if e.Session.Stats.DistanceTraveled != 10 {
		t.Errorf("distance = %d, want 10", e.Session.Stats.DistanceTraveled)
	}
}

func TestMove_InvalidDirection(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("move south")
	if result != "You cannot go south from here." {
		t.Errorf("result = %q", result)
	}
	if e.Session.Turn != 0 {
		t.Error("failed move should not consume a turn")
	}
}

func TestMove_DirectionShortcut(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	if result, _ := e.Command("n"); !strings.Contains(result, "You travel north") {
		t.Errorf("result = %q", result)
	}
}

func TestTalk(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)

	result, _ := e.Command("talk to manuel")
	if !strings.HasPrefix(result, "Manuel: '") {
		t.Errorf("result = %q", result)
	}
	if e.Session.Turn != 1 {
		t.Errorf("turn = %d, want 1", e.Session.Turn)
	}
	if e.Session.Stats.LivesImpacted != 1 {
		t.Errorf("lives impacted = %d, want 1", e.Session.Stats.LivesImpacted)
	}
}

func TestTalk_NobodyThere(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("talk elena")
	if result != "There is no one named elena here." {
		t.Errorf("result = %q", result)
	}
}

func TestTake(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Location().AddItem("Worn Jacket")

	result, _ := e.Command("take worn jacket")
	if result != "You take the Worn Jacket." {
		t.Errorf("result = %q", result)
	}
	if !e.Session.Player.HasItem("Worn Jacket") {
		t.Error("item should be in inventory")
	}
	if e.Session.Location().HasItem("Worn Jacket") {
		t.Error("item should be gone from the location")
	}
}

func TestTake_Missing(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("take golden idol")
	if result != "There is no golden idol here to take." {
		t.Errorf("result = %q", result)
	}
}

func TestUseWaterBottle_LastBottleKept(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.Migrant.Water = 50

	result, _ := e.Command("use water bottle")
	if !strings.Contains(result, "restoring 30 water") || !strings.Contains(result, "refill") {
		t.Errorf("result = %q", result)
	}
	if !e.Session.Player.HasItem("Water Bottle") {
		t.Error("last water bottle should be kept as a container")
	}
	if e.Session.Player.Migrant.Water != 80 {
		t.Errorf("water = %d, want 80", e.Session.Player.Migrant.Water)
	}
}

func TestUseWaterBottle_SpareConsumed(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.AddItem("Water Bottle")
	e.Session.Player.Migrant.Water = 50

	result, _ := e.Command("use water bottle")
	if !strings.Contains(result, "The bottle is now empty.") {
		t.Errorf("result = %q", result)
	}
	count := 0
	for _, it := range e.Session.Player.Inventory {
		if it == "Water Bottle" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("bottles left = %d, want 1", count)
	}
}

func TestUseCannedFood(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.Migrant.Food = 50

	result, _ := e.Command("use canned food")
	if !strings.Contains(result, "(+40 food)") {
		t.Errorf("result = %q", result)
	}
	if e.Session.Player.HasItem("Canned Food") {
		t.Error("canned food should be consumed")
	}
}

func TestUseFamilyPhoto(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.Migrant.Hope = 50

	result, _ := e.Command("use family photo")
	if !strings.Contains(result, "(+15 hope)") {
		t.Errorf("result = %q", result)
	}
	if !e.Session.Player.HasItem("Family Photo") {
		t.Error("keepsakes are not consumed")
	}
}

func TestUseMap(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.AddItem("Map")

	result, _ := e.Command("use map")
	if !strings.Contains(result, "Available paths:") {
		t.Errorf("result = %q", result)
	}
	if !strings.Contains(result, "North: Border Wall (High risk)") {
		t.Errorf("map should band risk by danger level, got %q", result)
	}
}

func TestUse_Missing(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("use blanket")
	if result != "You don't have blanket in your inventory." {
		t.Errorf("result = %q", result)
	}
}

func TestService(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)

	result, _ := e.Command("use service food")
	if !strings.Contains(result, "receives a meal") {
		t.Errorf("result = %q", result)
	}
	if e.Session.Turn != 1 {
		t.Errorf("turn = %d, want 1", e.Session.Turn)
	}
}

func TestService_NotASettlement(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	relocate(e, world.SonoranDesert)

	result, _ := e.Command("use service food")
	if result != "This location doesn't have services." {
		t.Errorf("result = %q", result)
	}
}

func TestStatus(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	status := e.Status()

	for _, want := range []string{
		"Turn: 0/30",
		"Location: Nogales (Mexico)",
		"Health: 100/100",
		"Water: 100/100",
		"Money: $100",
		"Hope: 100/100",
		"Inventory: Water Bottle, Family Photo, Canned Food",
	} {
		if !strings.Contains(status, want) {
			t.Errorf("status missing %q:\n%s", want, status)
		}
	}
	if strings.Contains(status, "Moral Compass") {
		t.Error("migrant status should not show agent stats")
	}
}

func TestStatus_Agent(t *testing.T) {
	e := newTestEngine(t, character.KindAgent)
	status := e.Status()

	for _, want := range []string{"Moral Compass: 50/100", "Stress: 0/100", "Money: $200"} {
		if !strings.Contains(status, want) {
			t.Errorf("status missing %q:\n%s", want, status)
		}
	}
	if strings.Contains(status, "Hope:") {
		t.Error("agent status should not show migrant stats")
	}
}

func TestVisualBar(t *testing.T) {
	tests := []struct {
		value  int
		invert bool
		want   string
	}{
		{50, false, strings.Repeat("█", 10) + strings.Repeat("░", 10)},
		{100, false, strings.Repeat("█", 20)},
		{20, false, "[!] " + strings.Repeat("█", 4) + strings.Repeat("░", 16) + " [CRITICAL]"},
		{40, false, "[!] " + strings.Repeat("█", 8) + strings.Repeat("░", 12) + " [LOW]"},
		{50, true, strings.Repeat("█", 10) + strings.Repeat("░", 10)},
		{60, true, "[!] " + strings.Repeat("█", 12) + strings.Repeat("░", 8) + " [HIGH]"},
		{85, true, "[!] " + strings.Repeat("█", 17) + strings.Repeat("░", 3) + " [CRITICAL]"},
	}
	for _, tt := range tests {
		if got := visualBar(tt.value, tt.invert); got != tt.want {
			t.Errorf("visualBar(%d, %v) = %q, want %q", tt.value, tt.invert, got, tt.want)
		}
	}
}

func TestGameOver_Death(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.Health = 0

	out := e.BeginTurn()
	if !e.Over() || e.Ending() != story.EndingDeath {
		t.Fatalf("over=%v ending=%q", e.Over(), e.Ending())
	}
	if !strings.Contains(out, "tragic end") {
		t.Errorf("output = %q", out)
	}
}

func TestGameOver_Dehydration(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.Migrant.Water = 0

	if !e.checkGameOver() || e.Ending() != story.EndingDeath {
		t.Errorf("water 0 should end in death, got %q", e.Ending())
	}
}

func TestGameOver_Success(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	relocate(e, world.Tucson)

	if !e.checkGameOver() || e.Ending() != story.EndingSuccess {
		t.Errorf("reaching Tucson should succeed, got %q", e.Ending())
	}
	if !strings.Contains(e.EndingMessage(), "successfully reached Tucson") {
		t.Errorf("message = %q", e.EndingMessage())
	}
}

func TestGameOver_Detained(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	relocate(e, world.DetentionCenter)

	if !e.checkGameOver() || e.Ending() != story.EndingDetained {
		t.Errorf("ending = %q, want detained", e.Ending())
	}
}

func TestGameOver_AgentNotDetained(t *testing.T) {
	e := newTestEngine(t, character.KindAgent)
	relocate(e, world.DetentionCenter)

	if e.checkGameOver() {
		t.Error("an agent at the detention center is just at work")
	}
}

func TestGameOver_Timeout(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Turn = e.Session.MaxTurns

	if !e.checkGameOver() || e.Ending() != story.EndingTimeout {
		t.Errorf("ending = %q, want timeout", e.Ending())
	}
}

func TestCommand_Quit(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	if _, quit := e.Command("quit"); !quit {
		t.Error("quit should request exit")
	}
}

func TestCommand_Unknown(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("dance wildly")
	if !strings.Contains(result, "I don't understand 'dance wildly'") {
		t.Errorf("result = %q", result)
	}
}

func TestCommand_Empty(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("   ")
	if !strings.Contains(result, "Please enter a command") {
		t.Errorf("result = %q", result)
	}
}

func TestCommand_AfterGameOver(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.over = true
	if result, _ := e.Command("look"); result != "The game is over." {
		t.Errorf("result = %q", result)
	}
}

func TestHelp(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	help := e.help()
	if !strings.Contains(help, "Available commands:") {
		t.Errorf("help = %q", help)
	}
	if strings.Contains(help, "natural phrases") {
		t.Error("natural language hints should only appear with a matcher")
	}
}

func TestLook(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	result, _ := e.Command("look")
	if !strings.Contains(result, "Nogales (Mexico)") {
		t.Errorf("result = %q", result)
	}
	if e.Session.Turn != 0 {
		t.Error("look should not consume a turn")
	}
}

func TestConsumeResources_Desert(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	relocate(e, world.SonoranDesert)

	e.consumeResources()
	// Base 5 water plus half the scarcity of 9, base 5 food plus 2.
	if got := e.Session.Player.Migrant.Water; got != 91 {
		t.Errorf("water = %d, want 91", got)
	}
	if got := e.Session.Player.Migrant.Food; got != 93 {
		t.Errorf("food = %d, want 93", got)
	}
}

func TestConsumeResources_SettlementFoodService(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)

	e.consumeResources()
	if got := e.Session.Player.Migrant.Food; got != 98 {
		t.Errorf("food = %d, want 98 (service offsets consumption)", got)
	}
}

func TestConsumeResources_WaterCriticalFlag(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	e.Session.Player.Migrant.Water = 22

	e.consumeResources()
	if !e.Session.Player.HasFlag("water_critical") {
		t.Error("water below 20 should set water_critical")
	}

	e.Session.Player.Migrant.Water = 90
	e.consumeResources()
	if e.Session.Player.HasFlag("water_critical") {
		t.Error("recovering water should clear water_critical")
	}
}

func TestPresentDilemma(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant, 0)

	msg := e.presentDilemma()
	if !strings.Contains(msg, "You chose:") {
		t.Errorf("msg = %q", msg)
	}
	if e.Session.Stats.MoralChoices != 1 {
		t.Errorf("moral choices = %d, want 1", e.Session.Stats.MoralChoices)
	}
	if len(e.Session.Stats.KeyEvents) != 1 {
		t.Errorf("key events = %v", e.Session.Stats.KeyEvents)
	}
}

func TestGracefulExit(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	out := e.GracefulExit()
	if !strings.Contains(out, "remains unfinished") {
		t.Errorf("output = %q", out)
	}
}

func TestIntro(t *testing.T) {
	e := newTestEngine(t, character.KindMigrant)
	intro := e.Intro()
	if !strings.Contains(intro, "Nogales (Mexico)") {
		t.Errorf("intro = %q", intro)
	}
	if !strings.Contains(intro, "Type 'help' for available commands.") {
		t.Errorf("intro missing help hint: %q", intro)
	}
}
