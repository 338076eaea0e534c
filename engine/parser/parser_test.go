package parser

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
	}{
		// Movement
		{"move north", Intent{Verb: "move", Object: "north"}},
		{"go south", Intent{Verb: "move", Object: "south"}},
		{"walk east", Intent{Verb: "move", Object: "east"}},
		{"move n", Intent{Verb: "move", Object: "north"}},
		{"n", Intent{Verb: "move", Object: "north"}},
		{"s", Intent{Verb: "move", Object: "south"}},
		{"southeast", Intent{Verb: "move", Object: "southeast"}},
		{"move", Intent{Verb: "move", Object: ""}},

		// Talk
		{"talk manuel", Intent{Verb: "talk", Object: "manuel"}},
		{"talk to manuel", Intent{Verb: "talk", Object: "manuel"}},
		{"speak with the agent", Intent{Verb: "talk", Object: "agent"}},

		// Take
		{"take water bottle", Intent{Verb: "take", Object: "water bottle"}},
		{"get the map", Intent{Verb: "take", Object: "map"}},
		{"pick up wire cutters", Intent{Verb: "take", Object: "wire cutters"}},

		// Use
		{"use first aid kit", Intent{Verb: "use", Object: "first aid kit"}},
		{"use service food", Intent{Verb: "service", Object: "food"}},
		{"use service medical", Intent{Verb: "service", Object: "medical"}},

		// Simple commands
		{"look", Intent{Verb: "look"}},
		{"examine", Intent{Verb: "look"}},
		{"status", Intent{Verb: "status"}},
		{"inventory", Intent{Verb: "status"}},
		{"i", Intent{Verb: "status"}},
		{"help", Intent{Verb: "help"}},
		{"quit", Intent{Verb: "quit"}},
		{"exit", Intent{Verb: "quit"}},

		// Normalization
		{"  TALK   TO  Manuel  ", Intent{Verb: "talk", Object: "manuel"}},
		{"", Intent{}},

		// Unknown verbs pass through for the semantic matcher.
		{"ponder existence", Intent{Verb: "ponder", Object: "existence"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
