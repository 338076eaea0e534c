package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleStat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	styleMenu = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindDialogue
	kindStat
	kindError
	kindPrompt
	kindMenu
)

var errorPrefixes = []string{
	"You cannot go",
	"You can't",
	"You don't have",
	"There is no",
	"I don't understand",
	"Please enter a command",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	for _, p := range errorPrefixes {
		if strings.HasPrefix(line, p) {
			return kindError
		}
	}
	switch {
	case strings.Contains(line, "█") || strings.Contains(line, "░"):
		return kindStat
	case strings.HasPrefix(line, "Turn: "),
		strings.HasPrefix(line, "Location: "),
		strings.HasPrefix(line, "Money: "),
		strings.HasPrefix(line, "Inventory: "):
		return kindStat
	case containsQuotedSpeech(line):
		return kindDialogue
	default:
		return kindNarrative
	}
}

// containsQuotedSpeech checks if a line carries dialogue in single quotes.
func containsQuotedSpeech(line string) bool {
	inQuote := false
	quoteLen := 0
	for _, r := range line {
		if r == '\'' {
			if inQuote && quoteLen > 5 {
				return true
			}
			inQuote = !inQuote
			quoteLen = 0
		} else if inQuote {
			quoteLen++
		}
	}
	return false
}
