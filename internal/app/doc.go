// Package app wires configuration, sensor discovery and the terminal window
// together for the thermodial binary.
//
// # Startup
//
//	Run(ctx, opts)
//	       │
//	       ├─────> config.Load()        Read ~/.config/thermodial/config.toml
//	       ├─────> setupLogging()       Log file, or discard
//	       ├─────> sensor.Activate()    host.Init + modprobe (optional)
//	       ├─────> sensor.Discover()    List 28- devices once
//	       ├─────> sensor.NewReader()   Bounded ready wait
//	       └─────> ui.Run()             Start TUI (blocks)
//
// Only a broken configuration file or an unopenable log file stops startup.
// Activation failures are logged and ignored; an empty device list shows
// "No Sensor Found" in the window.
//
// Polling itself lives in the ui package, scheduled on the Bubble Tea tick so
// that every state change happens on the update loop.
package app
