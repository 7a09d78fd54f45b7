package sensor

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"periph.io/x/conn/v3/physic"
)

func writeSample(t *testing.T, dir, content string) string {
	t.Helper()
	device := filepath.Join(dir, "28-000005e2fdc3")
	if err := os.MkdirAll(device, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(device, dataFile), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return device
}

// scriptedOpen serves the given samples in order, repeating the last one.
func scriptedOpen(samples ...string) (func(string) (io.ReadCloser, error), func() int) {
	var mu sync.Mutex
	calls := 0
	open := func(string) (io.ReadCloser, error) {
		mu.Lock()
		defer mu.Unlock()
		idx := calls
		if idx >= len(samples) {
			idx = len(samples) - 1
		}
		calls++
		return io.NopCloser(strings.NewReader(samples[idx])), nil
	}
	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return calls
	}
	return open, count
}

const (
	notReadySample = "72 01 4b 46 7f ff 0e 10 57 : crc=57 NO\n72 01 4b 46 7f ff 0e 10 57 t=99999\n"
	readySample    = "72 01 4b 46 7f ff 0e 10 57 : crc=57 YES\n72 01 4b 46 7f ff 0e 10 57 t=23625\n"
)

func TestRead_ParsesReadySample(t *testing.T) {
	device := writeSample(t, t.TempDir(), readySample)

	r := NewReader(time.Second, time.Millisecond)
	got, err := r.Read(context.Background(), device)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !got.Valid {
		t.Fatalf("Read returned invalid reading")
	}
	if got.Celsius != 23.625 {
		t.Fatalf("Celsius = %v, want 23.625", got.Celsius)
	}
	if math.Abs(got.Fahrenheit-74.525) > 1e-9 {
		t.Fatalf("Fahrenheit = %v, want 74.525", got.Fahrenheit)
	}
}

func TestRead_EmptyDeviceIsAbsent(t *testing.T) {
	r := NewReader(0, 0)
	got, err := r.Read(context.Background(), "")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got.Valid {
		t.Fatalf("Read(\"\") = %#v, want invalid reading", got)
	}
}

func TestRead_RetriesUntilReady(t *testing.T) {
	open, calls := scriptedOpen(notReadySample, notReadySample, readySample)
	r := &Reader{RetryInterval: time.Millisecond, open: open}

	got, err := r.Read(context.Background(), "/sys/bus/w1/devices/28-x")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if calls() != 3 {
		t.Fatalf("file read %d times, want 3", calls())
	}
	if got.Celsius != 23.625 {
		t.Fatalf("Celsius = %v, want 23.625 (not the stale NO sample)", got.Celsius)
	}
}

func TestRead_NotReadyTimesOut(t *testing.T) {
	open, _ := scriptedOpen(notReadySample)
	r := &Reader{ReadyTimeout: 20 * time.Millisecond, RetryInterval: time.Millisecond, open: open}

	_, err := r.Read(context.Background(), "/sys/bus/w1/devices/28-x")
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("Read error = %v, want ErrNotReady", err)
	}
}

func TestRead_UnboundedWaitStopsOnCancel(t *testing.T) {
	open, _ := scriptedOpen(notReadySample)
	r := &Reader{RetryInterval: time.Millisecond, open: open}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := r.Read(ctx, "/sys/bus/w1/devices/28-x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Read error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrNotReady) {
		t.Fatalf("cancellation should not be reported as ErrNotReady")
	}
}

func TestRead_MissingValueMarkerIsSoft(t *testing.T) {
	device := writeSample(t, t.TempDir(), "aa bb : crc=57 YES\naa bb garbage\n")

	got, err := NewReader(time.Second, time.Millisecond).Read(context.Background(), device)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got.Valid {
		t.Fatalf("Read = %#v, want invalid reading", got)
	}
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"truncated", "aa bb : crc=57 YES\n"},
		{"bad_number", "aa bb : crc=57 YES\naa bb t=abc\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			device := writeSample(t, t.TempDir(), tc.content)
			if _, err := NewReader(time.Second, time.Millisecond).Read(context.Background(), device); err == nil {
				t.Fatalf("Read returned nil error, want error")
			}
		})
	}
}

func TestRead_MissingFileFails(t *testing.T) {
	_, err := NewReader(time.Second, time.Millisecond).Read(context.Background(), filepath.Join(t.TempDir(), "28-gone"))
	if err == nil {
		t.Fatalf("Read returned nil error, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Read error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestFromMilliCelsius_Conversion(t *testing.T) {
	for _, milli := range []float64{-55000, -1250, 0, 62, 23625, 85000, 125000} {
		got := FromMilliCelsius(milli)
		wantC := milli / 1000
		if got.Celsius != wantC {
			t.Fatalf("FromMilliCelsius(%v).Celsius = %v, want %v", milli, got.Celsius, wantC)
		}
		if wantF := wantC*9/5 + 32; got.Fahrenheit != wantF {
			t.Fatalf("FromMilliCelsius(%v).Fahrenheit = %v, want %v", milli, got.Fahrenheit, wantF)
		}
	}
}

func TestReading_Temperature(t *testing.T) {
	got := FromMilliCelsius(23625).Temperature()
	want := physic.ZeroCelsius + 23625*physic.MilliKelvin
	if got != want {
		t.Fatalf("Temperature = %v, want %v", got, want)
	}
	if (Reading{}).Temperature() != 0 {
		t.Fatalf("invalid reading Temperature should be zero")
	}
}
