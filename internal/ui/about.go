package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// aboutBox is the informational box of the About menu. Any key closes it.
type aboutBox struct{}

func (a aboutBox) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return a, nil, true
	}
	return a, nil, false
}

func (a aboutBox) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("About " + appTitle))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Version " + appVersion))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("By Abetter Automation"))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press any key"))

	return placeModal(theme, width, height, b.String(), 40)
}
