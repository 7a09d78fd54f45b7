package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/thermodial/internal/sensor"
	"github.com/five82/thermodial/internal/state"
)

// Reader reads one temperature sample from a device.
type Reader interface {
	Read(ctx context.Context, device string) (sensor.Reading, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Reader    Reader
	Devices   []string
	ThemeName string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx    context.Context
	reader Reader

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Data state
	session state.Session
	dial    Dial

	// At most one read is outstanding. readSeq identifies it; a read
	// requested meanwhile is deferred until it completes.
	readSeq       int
	reading       bool
	rereadPending bool

	// Overlays
	menu     menuState
	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	session := state.NewSession(opts.Devices)

	// Init issues the first read; it is outstanding from the start.
	return Model{
		ctx:     ctx,
		reader:  opts.Reader,
		theme:   GetTheme(themeName),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		session: session,
		dial:    NewDial(session.Unit()),
		readSeq: 1,
		reading: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(appTitle),
		tickCmd(pollInterval),
		m.initialRead(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case readingMsg:
		return m.handleReading(msg)

	case sensorSelectedMsg:
		return m.handleSensorSelected(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// StatusLabel returns the device label shown under the dial.
func (m Model) StatusLabel() string {
	return m.session.Label()
}

// Dial returns the gauge currently displayed.
func (m Model) Dial() Dial {
	return m.dial
}

// Session returns the window's application state.
func (m Model) Session() state.Session {
	return m.session
}

// handleKey routes input to the open overlay, or resolves it to a command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.menu.open {
		return m.handleMenuKey(msg)
	}

	return m.dispatch(m.keys.command(msg))
}

// handleTick starts a poll unless one is still outstanding, then reschedules.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if !m.reading {
		cmds = append(cmds, m.startRead())
	}
	cmds = append(cmds, tickCmd(pollInterval))
	return m, tea.Batch(cmds...)
}

// handleReading records a finished read and starts a deferred one, if any.
func (m Model) handleReading(msg readingMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.seq == m.readSeq && m.reading {
		m.reading = false
		if m.rereadPending {
			m.rereadPending = false
			cmd = m.startRead()
		}
	}
	if !m.session.Record(msg.device, msg.reading, msg.err, msg.at) {
		return m, cmd
	}
	if msg.err != nil {
		log.Printf("read %s failed: %v", msg.device, msg.err)
	}
	m.syncDial()
	return m, cmd
}

func (m Model) handleSensorSelected(msg sensorSelectedMsg) (tea.Model, tea.Cmd) {
	if !m.session.Select(msg.index) {
		return m, nil
	}
	log.Printf("sensor changed to %s", m.session.Current())
	m.syncDial()
	return m, m.startRead()
}

// startRead returns a read of the current device and marks it outstanding.
// While another read is outstanding it only defers the request.
func (m *Model) startRead() tea.Cmd {
	if m.reading {
		m.rereadPending = true
		return nil
	}
	m.readSeq++
	m.reading = true
	return m.readCmd(m.readSeq, m.session.Current())
}

// initialRead is the read New marks as outstanding.
func (m Model) initialRead() tea.Cmd {
	return m.readCmd(m.readSeq, m.session.Current())
}

// syncDial pushes the session's value for the current unit onto the dial.
func (m *Model) syncDial() {
	if v, ok := m.session.Display(); ok {
		m.dial.SetValue(v)
		return
	}
	m.dial.Clear()
}

// renderMain renders the window: menu bar, dial frame, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderMenuBar())
	b.WriteString("\n")
	if m.menu.open {
		b.WriteString(m.renderMenuDropdown())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFrame())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

type tickMsg time.Time

type readingMsg struct {
	seq     int
	device  string
	reading sensor.Reading
	err     error
	at      time.Time
}

type sensorSelectedMsg struct {
	index int
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) readCmd(seq int, device string) tea.Cmd {
	ctx, reader := m.ctx, m.reader
	return func() tea.Msg {
		if reader == nil {
			return readingMsg{seq: seq, device: device, at: time.Now()}
		}
		r, err := reader.Read(ctx, device)
		return readingMsg{seq: seq, device: device, reading: r, err: err, at: time.Now()}
	}
}

// Run starts the Bubble Tea program and blocks until the user exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
