package session

import (
	"testing"

	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/rng"
	"github.com/nathoo/borderline/engine/world"
	"github.com/nathoo/borderline/types"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	r := rng.New(42)
	w := world.Build(r)
	player := character.NewMigrant("Miguel", "a traveler", "Oaxaca", "family", 100)
	s := New(w, player, r, &ScriptDecider{}, 30)
	w.Get(world.NogalesMX).AddCharacter(player)
	return s
}

func TestTimeOfDay_Cycle(t *testing.T) {
	s := newTestContext(t)

	want := []types.TimeOfDay{
		types.Dawn, types.Day, types.Day, types.Day, types.Dusk, types.Night,
		types.Dawn, types.Day,
	}
	for turn, wantTime := range want {
		s.Turn = turn
		if got := s.TimeOfDay(); got != wantTime {
			t.Errorf("turn %d: time = %s, want %s", turn, got, wantTime)
		}
	}
}

func TestAdvanceTurn_PropagatesTime(t *testing.T) {
	s := newTestContext(t)

	for i := 0; i < 5; i++ {
		s.AdvanceTurn()
	}
	if s.Turn != 5 {
		t.Fatalf("turn = %d, want 5", s.Turn)
	}
	for id, l := range s.World.Locations {
		if l.TimeOfDay != types.Night {
			t.Errorf("%s: time = %s, want night", id, l.TimeOfDay)
		}
	}
}

func TestLocation(t *testing.T) {
	s := newTestContext(t)
	if loc := s.Location(); loc == nil || loc.ID != world.NogalesMX {
		t.Fatalf("location = %v, want %s", loc, world.NogalesMX)
	}
}

func TestScriptDecider(t *testing.T) {
	d := &ScriptDecider{Picks: []int{2, 0}}
	options := []Option{{Label: "a"}, {Label: "b"}, {Label: "c"}}

	if got := d.Choose("?", options); got != 2 {
		t.Errorf("first pick = %d, want 2", got)
	}
	if got := d.Choose("?", options); got != 0 {
		t.Errorf("second pick = %d, want 0", got)
	}
	// Script exhausted: falls back to first enabled option.
	disabled := []Option{{Label: "a", Disabled: true}, {Label: "b"}}
	if got := d.Choose("?", disabled); got != 1 {
		t.Errorf("fallback pick = %d, want 1", got)
	}
}

func TestScriptDecider_RejectsDisabledPick(t *testing.T) {
	d := &ScriptDecider{Picks: []int{0}}
	options := []Option{{Label: "a", Disabled: true}, {Label: "b"}}
	if got := d.Choose("?", options); got != 1 {
		t.Errorf("pick = %d, want 1 (first enabled)", got)
	}
}

func TestJourneyStats_DedupesConsecutiveKeyEvents(t *testing.T) {
	var j JourneyStats
	j.RecordKeyEvent("crossed the wall")
	j.RecordKeyEvent("crossed the wall")
	j.RecordKeyEvent("reached Tucson")
	j.RecordKeyEvent("crossed the wall")

	want := []string{"crossed the wall", "reached Tucson", "crossed the wall"}
	if len(j.KeyEvents) != len(want) {
		t.Fatalf("key events = %v, want %v", j.KeyEvents, want)
	}
	for i := range want {
		if j.KeyEvents[i] != want[i] {
			t.Errorf("key event %d = %q, want %q", i, j.KeyEvents[i], want[i])
		}
	}
}
