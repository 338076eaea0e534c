// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching. Free-form input
// that doesn't match here can still be rescued by the semantic matcher.
package parser

import "strings"

// Intent is a parsed player command.
type Intent struct {
	Verb   string // "move", "talk", "take", "use", "service", "look", "status", "help", "quit"
	Object string // direction, character name, item name, or service name
}

var directionExpansions = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",
}

var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
}

var verbAliases = map[string]string{
	// Movement
	"go":     "move",
	"walk":   "move",
	"head":   "move",
	"travel": "move",

	// Talk
	"speak": "talk",
	"ask":   "talk",
	"chat":  "talk",

	// Take
	"get":  "take",
	"grab": "take",

	// Look
	"l":       "look",
	"x":       "look",
	"examine": "look",

	// Status
	"inventory": "status",
	"inv":       "status",
	"i":         "status",

	// Quit
	"exit": "quit",
	"q":    "quit",
}

var prepositions = map[string]bool{
	"to": true, "with": true, "at": true, "on": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent. Empty input yields
// the zero Intent; unrecognized verbs come back verbatim so the caller can
// hand them to the semantic matcher or report them.
func Parse(input string) Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → move <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return Intent{Verb: "move", Object: dir}
		}
		if directionNames[words[0]] {
			return Intent{Verb: "move", Object: words[0]}
		}
	}

	// "pick up X" → take X
	if len(words) >= 2 && words[0] == "pick" && words[1] == "up" {
		words = append([]string{"take"}, words[2:]...)
	}

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := words[1:]

	// "use service food" → service food
	if verb == "use" && len(rest) > 0 && rest[0] == "service" {
		verb = "service"
		rest = rest[1:]
	}

	// Strip articles and the leading preposition: "talk to the coyote".
	rest = stripNoise(rest)

	// Expand shorthand directions in "move n".
	if verb == "move" && len(rest) == 1 {
		if dir, ok := directionExpansions[rest[0]]; ok {
			rest[0] = dir
		}
	}

	return Intent{Verb: verb, Object: strings.Join(rest, " ")}
}

// stripNoise removes articles everywhere and prepositions from the front,
// so "to the agent" and "agent" resolve the same way.
func stripNoise(words []string) []string {
	result := make([]string, 0, len(words))
	for i, w := range words {
		if articles[w] {
			continue
		}
		if prepositions[w] && i == 0 {
			continue
		}
		result = append(result, w)
	}
	return result
}
