package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/borderline/config"
	"github.com/nathoo/borderline/engine"
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/session"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	e, err := engine.New(engine.Options{
		Config:     config.Default(),
		Decider:    s,
		PlayerName: "Alma",
		PlayerKind: character.KindMigrant,
		Seed:       42,
	})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	s.Engine = e
	return s
}

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := newModel(newTestSession(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)

	if _, ok := h.Prev(); ok {
		t.Error("empty history should have no previous entry")
	}

	h.Push("look")
	h.Push("status")
	h.Push("status") // consecutive duplicate skipped
	h.Push("move north")

	if got, _ := h.Prev(); got != "move north" {
		t.Errorf("Prev = %q, want move north", got)
	}
	if got, _ := h.Prev(); got != "status" {
		t.Errorf("Prev = %q, want status", got)
	}
	if got, _ := h.Next(); got != "move north" {
		t.Errorf("Next = %q, want move north", got)
	}
	if _, ok := h.Next(); ok {
		t.Error("Next past the newest entry should return false")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c")

	if got, _ := h.Prev(); got != "c" {
		t.Errorf("Prev = %q, want c", got)
	}
	if got, _ := h.Prev(); got != "b" {
		t.Errorf("Prev = %q, want b", got)
	}
	if got, _ := h.Prev(); got != "b" {
		t.Errorf("Prev at oldest = %q, want b", got)
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 20, "short"},
		{"one two three four", 8, "one two\nthree\nfour"},
		{"exact fit", 9, "exact fit"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := wordWrap(tt.text, tt.width); got != tt.want {
			t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"You cannot go south from here.", kindError},
		{"I don't understand 'dance'. Type 'help' for assistance.", kindError},
		{"There is no one named elena here.", kindError},
		{"Manuel: 'The desert doesn't care about your reasons for crossing.'", kindDialogue},
		{"Health: 100/100 ████████████████████", kindStat},
		{"Turn: 3/30", kindStat},
		{"The sun beats down on the border city.", kindNarrative},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestAppendOutput(t *testing.T) {
	m := sizedModel(t)
	m = m.appendOutput(outputMsg{lines: []string{"A dusty road.", "Manuel is here."}})

	view := m.View()
	if !strings.Contains(view, "A dusty road.") {
		t.Errorf("view missing output:\n%s", view)
	}
}

func TestStatusBar(t *testing.T) {
	m := sizedModel(t)
	bar := m.renderStatusBar()

	if !strings.Contains(bar, "Nogales (Mexico)") {
		t.Errorf("status bar missing location: %q", bar)
	}
	if !strings.Contains(bar, "Turn 0/30") {
		t.Errorf("status bar missing turn: %q", bar)
	}
	if !strings.Contains(bar, "Hope:100") {
		t.Errorf("status bar missing vitals: %q", bar)
	}
}

func TestShowChoice(t *testing.T) {
	m := sizedModel(t)
	updated, _ := m.Update(choiceMsg{
		prompt:  "A choice must be made.",
		options: []session.Option{{Label: "first"}, {Label: "second", Note: "Costs $50"}},
	})
	m = updated.(Model)

	if m.choice == nil {
		t.Fatal("choice mode not entered")
	}
	view := m.View()
	if !strings.Contains(view, "1. first") || !strings.Contains(view, "2. second (Costs $50)") {
		t.Errorf("menu not rendered:\n%s", view)
	}
	if !strings.Contains(m.input.Prompt, "Choice (1-2)") {
		t.Errorf("input prompt = %q", m.input.Prompt)
	}
}

func TestHandleChoice_Valid(t *testing.T) {
	m := sizedModel(t)
	m.choice = []session.Option{{Label: "first"}, {Label: "second"}}

	updated, _ := m.handleChoice("2")
	m = updated.(Model)

	if m.choice != nil {
		t.Error("choice mode should be cleared")
	}
	select {
	case pick := <-m.session.pickCh:
		if pick != 1 {
			t.Errorf("pick = %d, want 1", pick)
		}
	default:
		t.Error("no pick delivered")
	}
}

func TestHandleChoice_Invalid(t *testing.T) {
	m := sizedModel(t)
	m.choice = []session.Option{{Label: "only"}}

	updated, _ := m.handleChoice("7")
	m = updated.(Model)

	if m.choice == nil {
		t.Error("choice mode should persist after invalid input")
	}
	last := m.rawLines[len(m.rawLines)-1].text
	if !strings.Contains(last, "between 1 and 1") {
		t.Errorf("last line = %q", last)
	}
}

func TestHandleChoice_Disabled(t *testing.T) {
	m := sizedModel(t)
	m.choice = []session.Option{
		{Label: "locked", Disabled: true, Note: "Requires Wire Cutters - not in your inventory"},
		{Label: "open"},
	}

	updated, _ := m.handleChoice("1")
	m = updated.(Model)

	if m.choice == nil {
		t.Error("choice mode should persist after picking a disabled option")
	}
	last := m.rawLines[len(m.rawLines)-1].text
	if !strings.Contains(last, "Wire Cutters") {
		t.Errorf("last line = %q", last)
	}
}

func TestHandleEnter_SendsCommand(t *testing.T) {
	m := sizedModel(t)
	m.input.SetValue("look")

	updated, _ := m.handleEnter()
	m = updated.(Model)

	select {
	case cmd := <-m.session.inputCh:
		if cmd != "look" {
			t.Errorf("command = %q, want look", cmd)
		}
	default:
		t.Error("command not delivered to the engine loop")
	}

	found := false
	for _, rl := range m.rawLines {
		if rl.isInput && rl.text == "> look" {
			found = true
		}
	}
	if !found {
		t.Error("input not echoed into the narrative")
	}
}

func TestFinished(t *testing.T) {
	m := sizedModel(t)
	updated, _ := m.Update(finishedMsg{})
	m = updated.(Model)

	if !m.done {
		t.Fatal("finishedMsg should mark the model done")
	}

	updated, cmd := m.handleEnter()
	m = updated.(Model)
	if !m.quitting || cmd == nil {
		t.Error("enter after finish should quit")
	}
}
