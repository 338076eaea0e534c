package resolve

import (
	"testing"

	"github.com/nathoo/borderline/engine/character"
)

func TestItem(t *testing.T) {
	items := []string{"Water Bottle", "Wire Cutters", "First Aid Kit", "Map"}

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"water bottle", "Water Bottle", true},
		{"Water", "Water Bottle", true},
		{"wire", "Wire Cutters", true},
		{"aid", "First Aid Kit", true},
		{"map", "Map", true},
		{"cutters", "Wire Cutters", true},
		{"compass", "", false},
		{"", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		got, found := Item(items, tt.query)
		if got != tt.want || found != tt.found {
			t.Errorf("Item(%q) = %q, %v; want %q, %v", tt.query, got, found, tt.want, tt.found)
		}
	}
}

func TestItem_ExactBeatsPrefix(t *testing.T) {
	items := []string{"Map of Sonora", "Map"}
	got, _ := Item(items, "map")
	if got != "Map" {
		t.Errorf("Item(map) = %q, want exact match Map", got)
	}
}

func TestCharacter(t *testing.T) {
	chars := []*character.Character{
		character.New("Manuel", "a smuggler", 90),
		character.NewAgent("Agent Hernandez", "a patrol agent", 12, 100),
		character.NewMigrant("Elena", "a young mother", "Guatemala City", "asylum", 80),
	}

	tests := []struct {
		query string
		want  string
	}{
		{"manuel", "Manuel"},
		{"MANUEL", "Manuel"},
		{"agent", "Agent Hernandez"},
		{"hernandez", "Agent Hernandez"},
		{"elena", "Elena"},
		{"ele", "Elena"},
	}
	for _, tt := range tests {
		got, found := Character(chars, tt.query)
		if !found || got.Name != tt.want {
			t.Errorf("Character(%q) = %v, want %s", tt.query, got, tt.want)
		}
	}

	if _, found := Character(chars, "nobody"); found {
		t.Error("Character(nobody) should not match")
	}
}
