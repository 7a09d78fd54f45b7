// Package ui provides the terminal window of thermodial.
//
// # Architecture Overview
//
// The window is a Bubble Tea program. Model owns the state.Session and every
// widget; Update is the only place state changes.
//
//   - app.go: Model, messages, the update loop and Run
//   - commands.go: the command enum and its dispatcher
//   - keys.go: key bindings and their mapping to commands
//   - menu.go: File / About menu bar and drop-downs
//   - dial.go: the analog gauge
//   - frame.go, status.go: dial frame, unit switch, device label, footer
//   - dialog.go: the modal Change Sensor dialog
//   - about.go, help.go, modal.go: the remaining overlays
//
// # Event Flow
//
//  1. Init schedules the first tick and reads the current device at once
//  2. Every tick (one second) starts a read unless one is outstanding
//  3. The read runs as a tea.Cmd; its readingMsg is recorded in the session
//     and pushed onto the dial
//  4. Keys resolve to a command; menu entries resolve to the same commands
//  5. Closing the Change Sensor dialog with a highlighted entry emits a
//     sensorSelectedMsg, which switches device and reads it immediately
//
// # Unit Changes
//
// Switching unit discards the dial and builds a new one for the unit:
// 60–220 °F with major ticks every 20 and minor every 10, or 0–100 °C with
// major ticks every 10 and no minor ticks. The last reading is shown on the new
// dial right away and a fresh read is requested.
//
// # Modals
//
// While a modal is open it receives every key. The sensor dialog lists the
// devices found at startup; the list is never rescanned.
//
// # Key Bindings
//
//   - u, up, down: toggle °F/°C (f and c select directly)
//   - s: Change Sensor dialog
//   - a: About box
//   - F10 or alt+f: File menu; alt+a: About menu
//   - T: cycle theme
//   - h or ?: help overlay
//   - e or Ctrl+C: exit
package ui
