package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle   = "Thermometer Dial"
	appVersion = "2.0"
)

const (
	menuFile = iota
	menuAbout
)

type menuEntry struct {
	label     string
	hotkey    string
	command   command
	separator bool
}

type menuDef struct {
	title   string
	entries []menuEntry
}

var menus = []menuDef{
	{
		title: "File",
		entries: []menuEntry{
			{label: "Change Sensor", hotkey: "s", command: cmdChangeSensor},
			{separator: true},
			{label: "Exit", hotkey: "e", command: cmdExit},
		},
	},
	{
		title: "About",
		entries: []menuEntry{
			{label: appTitle, hotkey: "a", command: cmdAbout},
		},
	},
}

// menuState tracks the open drop-down and its highlighted entry.
type menuState struct {
	open bool
	menu int
	item int
}

func (s menuState) entries() []menuEntry {
	return menus[s.menu].entries
}

// step moves the highlight by delta, skipping separators.
func (s menuState) step(delta int) menuState {
	entries := s.entries()
	for i := 0; i < len(entries); i++ {
		s.item = (s.item + delta + len(entries)) % len(entries)
		if !entries[s.item].separator {
			break
		}
	}
	return s
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.FileMenu):
		m.menu = menuState{}
	case key.Matches(msg, m.keys.Up):
		m.menu = m.menu.step(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu = m.menu.step(1)
	case key.Matches(msg, m.keys.Left):
		m.menu = menuState{open: true, menu: (m.menu.menu + len(menus) - 1) % len(menus)}
	case key.Matches(msg, m.keys.Right):
		m.menu = menuState{open: true, menu: (m.menu.menu + 1) % len(menus)}
	case key.Matches(msg, m.keys.Confirm):
		entry := m.menu.entries()[m.menu.item]
		m.menu = menuState{}
		return m.dispatch(entry.command)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// renderMenuBar renders the title and the menu titles.
func (m Model) renderMenuBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render(appTitle, styles.Logo)}
	for i, def := range menus {
		if m.menu.open && m.menu.menu == i {
			parts = append(parts, m.theme.Styles().Selected.Render(" "+def.title+" "))
			continue
		}
		parts = append(parts, bg.Render(" "+def.title+" ", styles.Text))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderMenuDropdown renders the entries of the open menu.
func (m Model) renderMenuDropdown() string {
	styles := m.theme.Styles()

	var lines []string
	for i, entry := range m.menu.entries() {
		if entry.separator {
			lines = append(lines, styles.FaintText.Render(strings.Repeat("─", 22)))
			continue
		}
		line := lipgloss.NewStyle().Width(16).Render(entry.label) + entry.hotkey
		if i == m.menu.item {
			lines = append(lines, styles.Selected.Width(22).Render(line))
		} else {
			lines = append(lines, styles.Text.Width(22).Render(line))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border))

	// Offset under the menu title.
	offset := lipgloss.Width(appTitle) + 3
	for i := 0; i < m.menu.menu; i++ {
		offset += lipgloss.Width(menus[i].title) + 4
	}
	return lipgloss.NewStyle().MarginLeft(offset).Render(box.Render(strings.Join(lines, "\n")))
}
