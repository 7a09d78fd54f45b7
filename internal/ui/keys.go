package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Menus
	FileMenu     key.Binding
	AboutMenu    key.Binding
	ChangeSensor key.Binding
	About        key.Binding

	// Unit control
	ToggleUnit key.Binding
	Fahrenheit key.Binding
	Celsius    key.Binding

	// Navigation (menus and dialogs)
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tab   key.Binding

	// Dialogs
	Confirm key.Binding
	Press   key.Binding
	Cancel  key.Binding
	Close   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Exit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Menus
		FileMenu: key.NewBinding(
			key.WithKeys("f10", "alt+f"),
			key.WithHelp("F10", "File menu"),
		),
		AboutMenu: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("alt+a", "About menu"),
		),
		ChangeSensor: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Change sensor"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "About"),
		),

		// Unit control
		ToggleUnit: key.NewBinding(
			key.WithKeys("u", "up", "down"),
			key.WithHelp("u", "Toggle °F/°C"),
		),
		Fahrenheit: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Fahrenheit"),
		),
		Celsius: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Celsius"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous menu"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next menu"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Next control"),
		),

		// Dialogs
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select"),
		),
		Press: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Press focused button"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Close: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Close dialog"),
		),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleUnit, k.ChangeSensor, k.FileMenu, k.About, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleUnit, k.Fahrenheit, k.Celsius},
		{k.FileMenu, k.AboutMenu, k.ChangeSensor, k.About},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// command resolves a key in the main window to a command.
func (k keyMap) command(msg tea.KeyMsg) command {
	switch {
	case key.Matches(msg, k.Quit):
		return cmdExit
	case key.Matches(msg, k.Help):
		return cmdHelp
	case key.Matches(msg, k.CycleTheme):
		return cmdCycleTheme
	case key.Matches(msg, k.FileMenu):
		return cmdOpenFileMenu
	case key.Matches(msg, k.AboutMenu):
		return cmdOpenAboutMenu
	case key.Matches(msg, k.ChangeSensor):
		return cmdChangeSensor
	case key.Matches(msg, k.About):
		return cmdAbout
	case key.Matches(msg, k.ToggleUnit):
		return cmdToggleUnit
	case key.Matches(msg, k.Fahrenheit):
		return cmdUnitFahrenheit
	case key.Matches(msg, k.Celsius):
		return cmdUnitCelsius
	}
	return cmdNone
}
