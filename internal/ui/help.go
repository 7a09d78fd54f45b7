package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	// Help content
	sections := []helpSection{
		{
			title: "Units",
			items: []helpItem{
				{"u/up/down", "Toggle °F/°C"},
				{"f", "Fahrenheit"},
				{"c", "Celsius"},
			},
		},
		{
			title: "Menus",
			items: []helpItem{
				{"F10/alt+f", "File menu"},
				{"alt+a", "About menu"},
				{"s", "Change sensor"},
				{"a", "About"},
			},
		},
		{
			title: "Change Sensor",
			items: []helpItem{
				{"j/k", "Move highlight"},
				{"enter", "Select"},
				{"tab/space", "Focus/press button"},
				{"esc/q", "Cancel"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"e/ctrl+c", "Exit"},
			},
		},
	}

	// Build help content
	var b strings.Builder

	// Title
	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		// Section title
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			// Key
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			// Description
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	// Build the modal
	content := b.String()

	return placeModal(m.theme, m.width, m.height, content, 40)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
