package ui

import (
	"errors"
	"strings"

	"github.com/five82/thermodial/internal/sensor"
)

// renderStatus renders the device label and the outcome of the latest poll.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	label := styles.Text.Bold(true).Render(m.session.Label())
	if m.session.Current() == "" {
		label = styles.WarningText.Bold(true).Render(m.session.Label())
	}

	var parts []string
	parts = append(parts, label)

	if err := m.session.LastError(); err != nil {
		style := styles.WarningText
		if m.session.IsStalled() {
			style = styles.DangerText
		}
		parts = append(parts, style.Render(classifyReadError(err)))
	} else if r := m.session.Reading(); r.Valid {
		// Full sensor resolution; the dial readout is rounded.
		parts = append(parts, styles.SuccessText.Render(r.Temperature().String()))
	}

	if at := m.session.LastUpdated(); !at.IsZero() {
		parts = append(parts, styles.MutedText.Render("updated "+at.Format("15:04:05")))
	}

	return strings.Join(parts, "  ")
}

// classifyReadError shortens a read error for the status line.
func classifyReadError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, sensor.ErrNotReady):
		return "sensor not ready"
	default:
		return "read failed: " + truncateMiddle(err.Error(), 60)
	}
}
