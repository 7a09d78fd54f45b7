package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dialogFocus int

const (
	focusList dialogFocus = iota
	focusSelect
	focusCancel
)

// sensorDialog lists the devices found at startup. Nothing is highlighted
// until the user moves the cursor.
type sensorDialog struct {
	devices []string
	cursor  int
	focus   dialogFocus
}

func newSensorDialog(devices []string) sensorDialog {
	return sensorDialog{devices: devices, cursor: -1}
}

func (d sensorDialog) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Confirm):
		return d.selectHighlighted()

	case key.Matches(keyMsg, keys.Cancel), key.Matches(keyMsg, keys.Close):
		return d, nil, true

	case key.Matches(keyMsg, keys.Press):
		switch d.focus {
		case focusSelect:
			return d.selectHighlighted()
		case focusCancel:
			return d, nil, true
		}

	case key.Matches(keyMsg, keys.Tab):
		if keyMsg.String() == "shift+tab" {
			d.focus = (d.focus + 2) % 3
		} else {
			d.focus = (d.focus + 1) % 3
		}

	case key.Matches(keyMsg, keys.Up):
		if len(d.devices) > 0 {
			d.focus = focusList
			if d.cursor > 0 {
				d.cursor--
			} else {
				d.cursor = 0
			}
		}

	case key.Matches(keyMsg, keys.Down):
		if len(d.devices) > 0 {
			d.focus = focusList
			if d.cursor < len(d.devices)-1 {
				d.cursor++
			}
		}

	case key.Matches(keyMsg, keys.Quit) && keyMsg.Type == tea.KeyCtrlC:
		return d, tea.Quit, true
	}

	return d, nil, false
}

// selectHighlighted closes the dialog and, when an entry is highlighted,
// reports it to the window. No highlight closes silently.
func (d sensorDialog) selectHighlighted() (Modal, tea.Cmd, bool) {
	if d.cursor < 0 || d.cursor >= len(d.devices) {
		return d, nil, true
	}
	index := d.cursor
	return d, func() tea.Msg { return sensorSelectedMsg{index: index} }, true
}

func (d sensorDialog) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	listWidth := 35
	for _, device := range d.devices {
		if w := lipgloss.Width(device) + 2; w > listWidth {
			listWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Change Sensor"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", listWidth)))
	b.WriteString("\n")

	listBorder := theme.BorderMuted
	if d.focus == focusList {
		listBorder = theme.BorderFocus
	}
	var rows []string
	for i, device := range d.devices {
		if i == d.cursor {
			rows = append(rows, styles.Selected.Width(listWidth).Render(device))
		} else {
			rows = append(rows, styles.Text.Width(listWidth).Render(device))
		}
	}
	// One spare row, as an empty listbox still shows its frame.
	rows = append(rows, strings.Repeat(" ", listWidth))
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(listBorder)).
		Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(listWidth+2, lipgloss.Center,
		d.button(styles, "Select", d.focus == focusSelect)+"  "+d.button(styles, "Cancel", d.focus == focusCancel)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("j/k move · enter select · esc cancel"))

	return placeModal(theme, width, height, b.String(), listWidth+8)
}

func (d sensorDialog) button(styles Styles, label string, focused bool) string {
	if focused {
		return styles.Selected.Padding(0, 1).Render(label)
	}
	return styles.SurfaceAlt.Padding(0, 1).Render(label)
}
