// Package state holds the application state of the thermometer window.
//
// # Overview
//
// Session replaces process-wide globals with one value owned by the UI model:
//
//   - the device identifiers discovered at startup (never rescanned)
//   - the current device (first discovered, or none)
//   - the display unit (Fahrenheit or Celsius)
//   - the outcome of the latest poll: reading, error, time, failure count
//
// # Concurrency Model
//
// Session has no locks. It is only mutated from the Bubble Tea Update
// function, which runs on a single goroutine. Sensor reads run elsewhere and
// deliver their results as messages that Update passes to Record.
//
// # Invariants
//
//   - At most one device is current.
//   - Record ignores results for devices that are no longer current, so the
//     displayed value always belongs to the current device.
//   - A failed poll keeps the last good reading and increments the failure
//     count; a successful poll resets it.
//   - Selecting a device clears the reading until the next poll completes.
package state
