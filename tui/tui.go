package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/borderline/engine"
	"github.com/nathoo/borderline/engine/session"
)

// Session bridges the synchronous engine and the asynchronous UI. The
// engine runs in its own goroutine and blocks on the channels; the model
// feeds them from the input line. Session implements session.Decider so
// mid-turn choices surface as inline menus.
type Session struct {
	Engine *engine.Engine

	prog    *tea.Program
	inputCh chan string
	pickCh  chan int
}

// NewSession creates an unbound session. The engine is attached
// afterwards because it needs the session as its decider.
func NewSession() *Session {
	return &Session{
		inputCh: make(chan string, 1),
		pickCh:  make(chan int, 1),
	}
}

// Run starts the Bubble Tea program and the engine loop.
func (s *Session) Run() error {
	m := newModel(s)
	p := tea.NewProgram(m, tea.WithAltScreen())
	s.prog = p
	go s.loop(p)
	_, err := p.Run()
	return err
}

// Choose sends the menu to the UI and blocks until the player picks.
func (s *Session) Choose(prompt string, options []session.Option) int {
	s.prog.Send(choiceMsg{prompt: prompt, options: options})
	pick, ok := <-s.pickCh
	if !ok {
		return firstEnabled(options)
	}
	return pick
}

func (s *Session) loop(p *tea.Program) {
	p.Send(outputMsg{lines: splitLines(s.Engine.Intro())})

	for {
		if out := s.Engine.BeginTurn(); out != "" {
			p.Send(outputMsg{lines: splitLines(out)})
		}
		if s.Engine.Over() {
			break
		}

		input, ok := <-s.inputCh
		if !ok {
			return
		}

		result, quit := s.Engine.Command(input)
		if quit {
			if s.Choose("Are you sure you want to quit?", []session.Option{
				{Label: "Yes, end the journey"},
				{Label: "No, keep going"},
			}) == 0 {
				p.Send(outputMsg{lines: splitLines(s.Engine.GracefulExit())})
				p.Send(finishedMsg{})
				return
			}
			continue
		}

		if result != "" {
			p.Send(outputMsg{input: input, lines: splitLines(result)})
		}
		if s.Engine.Over() {
			p.Send(outputMsg{lines: []string{s.Engine.EndingMessage()}})
			break
		}
	}

	p.Send(outputMsg{lines: splitLines(s.Engine.Summary())})
	p.Send(outputMsg{lines: splitLines(s.Engine.EndingText())})
	p.Send(finishedMsg{})
}

func firstEnabled(options []session.Option) int {
	for i, opt := range options {
		if !opt.Disabled {
			return i
		}
	}
	return 0
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// rawLine stores an unstyled output line with its classification, so we
// can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // true for echoed player input
}

// outputMsg carries engine output into the Update loop.
type outputMsg struct {
	input string // echoed player input (empty for engine-initiated text)
	lines []string
}

// choiceMsg switches the input line into menu-selection mode.
type choiceMsg struct {
	prompt  string
	options []session.Option
}

// finishedMsg signals that the engine loop is done and the UI should
// wait for one final keypress.
type finishedMsg struct{}

// Model is the Bubble Tea model for the border journey TUI.
type Model struct {
	session *Session

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine
	choice   []session.Option // nil unless a menu is pending

	width    int
	height   int
	ready    bool
	done     bool
	quitting bool
}

func newModel(s *Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		session: s,
		input:   ti,
		history: NewHistory(100),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			close(m.session.inputCh)
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case outputMsg:
		m = m.appendOutput(msg)

	case choiceMsg:
		m = m.showChoice(msg)

	case finishedMsg:
		m.done = true
		m.rawLines = append(m.rawLines, rawLine{text: "Press Enter to exit."})
		m.refreshViewport()
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line, routing it to the
// pending menu or to the engine.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if m.done {
		m.quitting = true
		return m, tea.Quit
	}

	if m.choice != nil {
		return m.handleChoice(input)
	}

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
	m.refreshViewport()

	select {
	case m.session.inputCh <- input:
	default:
		m.rawLines = append(m.rawLines, rawLine{text: "One thing at a time."})
		m.refreshViewport()
	}
	return m, nil
}

func (m Model) handleChoice(input string) (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(m.choice) {
		m.rawLines = append(m.rawLines,
			rawLine{text: fmt.Sprintf("Please enter a number between 1 and %d.", len(m.choice))})
		m.refreshViewport()
		return m, nil
	}
	if m.choice[n-1].Disabled {
		note := m.choice[n-1].Note
		if note == "" {
			note = "that option isn't available"
		}
		m.rawLines = append(m.rawLines, rawLine{text: "You can't choose that: " + note})
		m.refreshViewport()
		return m, nil
	}

	m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
	m.choice = nil
	m.input.Prompt = "> "
	m.refreshViewport()

	m.session.pickCh <- n - 1
	return m, nil
}

// showChoice renders a pending menu into the narrative and switches the
// input line to selection mode.
func (m Model) showChoice(msg choiceMsg) Model {
	m.rawLines = append(m.rawLines, rawLine{})
	for _, line := range splitLines(msg.prompt) {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: kindPrompt})
	}
	for i, opt := range msg.options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if opt.Note != "" {
			line += fmt.Sprintf(" (%s)", opt.Note)
		}
		if opt.Disabled {
			line += " [unavailable]"
		}
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: kindMenu})
	}

	m.choice = msg.options
	m.input.Prompt = fmt.Sprintf("Choice (1-%d)> ", len(msg.options))
	m.refreshViewport()
	return m
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: classifyLine(line)})
	}
	m.rawLines = append(m.rawLines, rawLine{})
	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)
		if rl.isInput {
			styled = append(styled, stylePlayerInput.Render(wrapped))
			continue
		}
		styled = append(styled, renderLineKind(wrapped, rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindStat:
		return styleStat.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindPrompt:
		return stylePrompt.Render(line)
	case kindMenu:
		return styleMenu.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (those drive input history instead).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
