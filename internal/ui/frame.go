package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thermodial/internal/state"
)

// renderFrame renders the ridge frame holding the dial, unit control and label.
func (m Model) renderFrame() string {
	dial := m.dial.View(m.theme)
	unit := lipgloss.NewStyle().PaddingLeft(2).Render(m.renderUnitControl())

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderStatus(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, dial, unit),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(body)
}

// renderUnitControl renders the two-position switch: °F on top, °C below.
func (m Model) renderUnitControl() string {
	styles := m.theme.Styles()

	position := func(u state.Unit) string {
		if m.session.Unit() == u {
			return styles.Selected.Render("[●]") + " " + styles.Text.Bold(true).Render(u.Symbol())
		}
		return styles.FaintText.Render("[ ]") + " " + styles.MutedText.Render(u.Symbol())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		position(state.UnitFahrenheit),
		styles.FaintText.Render(" │"),
		position(state.UnitCelsius),
	)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.View(m.keys))
}
