// Package config loads thermodial's optional TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/thermodial/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Base directory: /sys/bus/w1/devices
//   - Device prefix: 28-
//   - Ready timeout: 5s
//   - Retry interval: 200ms
//   - Host activation: enabled
//   - Theme: Nightfox
//   - Log file: none (logging discarded)
//
// # TOML Format
//
//	base_dir       = "/sys/bus/w1/devices"
//	device_prefix  = "28-"
//	ready_timeout  = "5s"
//	retry_interval = "200ms"
//	activate       = true
//	theme          = "Nightfox"
//	log_file       = "~/.local/state/thermodial.log"
//
// Durations use Go syntax. A ready_timeout of "0s" waits for the sensor
// indefinitely, as long as the program runs. Tilde expansion is applied to
// base_dir and log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and invalid or negative durations.
// A missing file is not an error.
//
// The polling period is fixed at one second and is deliberately not part of
// the configuration.
package config
