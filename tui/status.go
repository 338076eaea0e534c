package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// location, vitals, money, and turn count.
func (m Model) renderStatusBar() string {
	s := m.session.Engine.Session
	p := s.Player

	locName := "—"
	if loc := s.Location(); loc != nil {
		locName = loc.Name
	}

	var vitals []string
	vitals = append(vitals, fmt.Sprintf("HP:%d", p.Health))
	if v, ok := p.Stat("water"); ok {
		vitals = append(vitals, fmt.Sprintf("W:%d", v))
	}
	if v, ok := p.Stat("food"); ok {
		vitals = append(vitals, fmt.Sprintf("F:%d", v))
	}
	if v, ok := p.Stat("hope"); ok {
		vitals = append(vitals, fmt.Sprintf("Hope:%d", v))
	}
	if v, ok := p.Stat("stress"); ok {
		vitals = append(vitals, fmt.Sprintf("Stress:%d", v))
	}
	vitals = append(vitals, fmt.Sprintf("$%d", p.Money))

	left := fmt.Sprintf(" %s | %s", locName, strings.Join(vitals, " "))
	right := fmt.Sprintf("Turn %d/%d ", s.Turn, s.MaxTurns)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
