package sensor

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultBaseDir is where the w1 bus driver exposes its slaves.
	DefaultBaseDir = "/sys/bus/w1/devices"
	// DefaultPrefix is the DS18B20 family code directory prefix.
	DefaultPrefix = "28-"
)

// Discover lists every entry of baseDir whose name starts with prefix. The
// returned identifiers are full paths. An unreadable baseDir yields no devices.
func Discover(baseDir, prefix string) []string {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil
	}

	var devices []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		devices = append(devices, filepath.Join(baseDir, entry.Name()))
	}
	return devices
}
