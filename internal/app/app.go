package app

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/thermodial/internal/config"
	"github.com/five82/thermodial/internal/sensor"
	"github.com/five82/thermodial/internal/ui"
)

// Options configure the thermodial application.
type Options struct {
	ConfigPath string
}

// Run boots the thermometer window until the user exits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	devices := discover(ctx, cfg)

	reader := sensor.NewReader(cfg.ReadyTimeout, cfg.RetryInterval)

	uiOpts := ui.Options{
		Context:   ctx,
		Reader:    reader,
		Devices:   devices,
		ThemeName: cfg.Theme,
	}
	return ui.Run(uiOpts)
}

// discover activates the one-wire bus when configured and lists the
// thermometers once. The list is not refreshed while the program runs.
func discover(ctx context.Context, cfg config.Config) []string {
	if cfg.Activate {
		sensor.Activate(ctx, log.Default())
	}
	devices := sensor.Discover(cfg.BaseDir, cfg.DevicePrefix)
	log.Printf("found %d sensor(s) under %s", len(devices), cfg.BaseDir)
	return devices
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty. The terminal belongs to the UI, so logs never go to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "thermodial")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
