package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/thermodial/internal/state"
)

// command is a user action, independent of the key or menu entry that
// triggered it.
type command int

const (
	cmdNone command = iota
	cmdChangeSensor
	cmdExit
	cmdAbout
	cmdToggleUnit
	cmdUnitFahrenheit
	cmdUnitCelsius
	cmdHelp
	cmdCycleTheme
	cmdOpenFileMenu
	cmdOpenAboutMenu
)

// dispatch runs a command against the model.
func (m Model) dispatch(c command) (tea.Model, tea.Cmd) {
	switch c {
	case cmdChangeSensor:
		m.modal = newSensorDialog(m.session.Devices())
		return m, nil

	case cmdExit:
		return m, tea.Quit

	case cmdAbout:
		m.modal = aboutBox{}
		return m, nil

	case cmdToggleUnit:
		return m.changeUnit(m.session.Unit().Toggle())

	case cmdUnitFahrenheit:
		return m.changeUnit(state.UnitFahrenheit)

	case cmdUnitCelsius:
		return m.changeUnit(state.UnitCelsius)

	case cmdHelp:
		m.showHelp = true
		return m, nil

	case cmdCycleTheme:
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, nil

	case cmdOpenFileMenu:
		m.menu = menuState{open: true, menu: menuFile}
		return m, nil

	case cmdOpenAboutMenu:
		m.menu = menuState{open: true, menu: menuAbout}
		return m, nil
	}

	return m, nil
}

// changeUnit rebuilds the dial for the new unit and refreshes the reading.
func (m Model) changeUnit(u state.Unit) (tea.Model, tea.Cmd) {
	if !m.session.SetUnit(u) {
		return m, nil
	}
	m.dial = NewDial(u)
	m.syncDial()
	return m, m.startRead()
}
