package sensor

import (
	"context"
	"log"
	"os/exec"
	"strings"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// activationCommands load the GPIO bus master and the thermometer driver.
// modprobe is a no-op for modules that are already loaded.
var activationCommands = [][]string{
	{"modprobe", "w1-gpio"},
	{"modprobe", "w1-therm"},
}

var (
	// initHost loads the periph host drivers and reports how many GPIO pins
	// they registered.
	initHost = func() (int, error) {
		_, err := host.Init()
		return len(gpioreg.All()), err
	}
	runCommand = func(ctx context.Context, name string, args ...string) error {
		return exec.CommandContext(ctx, name, args...).Run()
	}
)

// Activate prepares the host for one-wire reads. w1-gpio drives the bus from a
// GPIO pin, so the modules are only loaded when the host exposes GPIO pins.
// Failures are only logged; Discover simply finds nothing when the bus is
// unavailable.
func Activate(ctx context.Context, logger *log.Logger) {
	pins, err := initHost()
	if err != nil {
		logger.Printf("host init failed: %v", err)
	}
	if pins == 0 {
		logger.Printf("no GPIO pins registered, skipping w1 module load")
		return
	}
	for _, cmd := range activationCommands {
		if err := runCommand(ctx, cmd[0], cmd[1:]...); err != nil {
			logger.Printf("%s failed: %v", strings.Join(cmd, " "), err)
		}
	}
}
