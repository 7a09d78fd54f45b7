package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/thermodial/internal/sensor"
)

// Config captures the runtime settings of thermodial.
type Config struct {
	BaseDir       string
	DevicePrefix  string
	ReadyTimeout  time.Duration
	RetryInterval time.Duration
	Activate      bool
	Theme         string
	LogFile       string
}

const (
	defaultConfigPath   = "~/.config/thermodial/config.toml"
	defaultReadyTimeout = 5 * time.Second
	defaultTheme        = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseDir:       sensor.DefaultBaseDir,
		DevicePrefix:  sensor.DefaultPrefix,
		ReadyTimeout:  defaultReadyTimeout,
		RetryInterval: sensor.DefaultRetryInterval,
		Activate:      true,
		Theme:         defaultTheme,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseDir       string `toml:"base_dir"`
		DevicePrefix  string `toml:"device_prefix"`
		ReadyTimeout  string `toml:"ready_timeout"`
		RetryInterval string `toml:"retry_interval"`
		Activate      *bool  `toml:"activate"`
		Theme         string `toml:"theme"`
		LogFile       string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.BaseDir); dir != "" {
		cfg.BaseDir = mustExpand(dir)
	}
	if prefix := strings.TrimSpace(raw.DevicePrefix); prefix != "" {
		cfg.DevicePrefix = prefix
	}
	if cfg.ReadyTimeout, err = parseDuration("ready_timeout", raw.ReadyTimeout, cfg.ReadyTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RetryInterval, err = parseDuration("retry_interval", raw.RetryInterval, cfg.RetryInterval); err != nil {
		return Config{}, err
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = sensor.DefaultRetryInterval
	}
	if raw.Activate != nil {
		cfg.Activate = *raw.Activate
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// parseDuration returns fallback for a blank value. Negative durations are rejected.
func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse config: %s must not be negative", field)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
