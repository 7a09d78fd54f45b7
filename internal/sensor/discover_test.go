package sensor

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestDiscover_MatchesPrefix(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"28-000005e2fdc3", "w1_bus_master1", "28-0316a2796dff", "10-000802b4d1a4"} {
		if err := os.Mkdir(filepath.Join(base, name), 0o755); err != nil {
			t.Fatalf("Mkdir: %v", err)
		}
	}

	got := Discover(base, DefaultPrefix)
	sort.Strings(got)
	want := []string{
		filepath.Join(base, "28-000005e2fdc3"),
		filepath.Join(base, "28-0316a2796dff"),
	}
	if len(got) != len(want) {
		t.Fatalf("Discover = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Discover[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiscover_MissingBaseIsEmpty(t *testing.T) {
	if got := Discover(filepath.Join(t.TempDir(), "missing"), DefaultPrefix); len(got) != 0 {
		t.Fatalf("Discover = %v, want none", got)
	}
}

func TestActivate_RunsEveryStepAndLogsFailures(t *testing.T) {
	origInit, origRun := initHost, runCommand
	t.Cleanup(func() { initHost, runCommand = origInit, origRun })

	hostCalled := false
	initHost = func() (int, error) {
		hostCalled = true
		return 54, errors.New("bcm283x-dma: permission denied")
	}
	var ran []string
	runCommand = func(_ context.Context, name string, args ...string) error {
		ran = append(ran, name+" "+strings.Join(args, " "))
		return errors.New("exit status 1")
	}

	var buf strings.Builder
	Activate(context.Background(), log.New(&buf, "", 0))

	if !hostCalled {
		t.Fatalf("host init was not attempted")
	}
	if len(ran) != 2 || ran[0] != "modprobe w1-gpio" || ran[1] != "modprobe w1-therm" {
		t.Fatalf("commands = %v, want modprobe w1-gpio then w1-therm", ran)
	}
	out := buf.String()
	for _, want := range []string{"host init failed", "modprobe w1-gpio failed", "modprobe w1-therm failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestActivate_QuietOnSuccess(t *testing.T) {
	origInit, origRun := initHost, runCommand
	t.Cleanup(func() { initHost, runCommand = origInit, origRun })

	initHost = func() (int, error) { return 54, nil }
	runCommand = func(context.Context, string, ...string) error { return nil }

	var buf strings.Builder
	Activate(context.Background(), log.New(&buf, "", 0))
	if buf.Len() != 0 {
		t.Fatalf("log output = %q, want empty", buf.String())
	}
}

func TestActivate_SkipsModulesWithoutGPIO(t *testing.T) {
	origInit, origRun := initHost, runCommand
	t.Cleanup(func() { initHost, runCommand = origInit, origRun })

	initHost = func() (int, error) { return 0, nil }
	var ran []string
	runCommand = func(_ context.Context, name string, args ...string) error {
		ran = append(ran, name)
		return nil
	}

	var buf strings.Builder
	Activate(context.Background(), log.New(&buf, "", 0))

	if len(ran) != 0 {
		t.Fatalf("commands = %v, want none without GPIO pins", ran)
	}
	if !strings.Contains(buf.String(), "no GPIO pins registered") {
		t.Fatalf("log output = %q, want the skip reason", buf.String())
	}
}
