package sensor

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	dataFile    = "w1_slave"
	readyMarker = "YES"
	valueMarker = "t="

	// DefaultRetryInterval is the pause between reads while a sample is not ready.
	DefaultRetryInterval = 200 * time.Millisecond
)

// ErrNotReady is returned when a device never reports a usable sample within
// the ready timeout.
var ErrNotReady = errors.New("sensor not ready")

// Reader reads samples from w1-therm devices.
type Reader struct {
	// ReadyTimeout bounds the wait for the ready marker. Zero waits until the
	// context passed to Read is done.
	ReadyTimeout time.Duration
	// RetryInterval is the pause between attempts; zero uses DefaultRetryInterval.
	RetryInterval time.Duration

	open func(name string) (io.ReadCloser, error)
}

// NewReader returns a Reader reading from the real filesystem.
func NewReader(readyTimeout, retryInterval time.Duration) *Reader {
	return &Reader{
		ReadyTimeout:  readyTimeout,
		RetryInterval: retryInterval,
	}
}

// Read returns the current temperature of device. An empty device yields an
// invalid Reading and no error.
func (r *Reader) Read(ctx context.Context, device string) (Reading, error) {
	if device == "" {
		return Reading{}, nil
	}

	if r.ReadyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.ReadyTimeout)
		defer cancel()
	}

	path := filepath.Join(device, dataFile)
	lines, err := r.sample(path)
	if err != nil {
		return Reading{}, err
	}

	for !ready(lines) {
		if err := r.wait(ctx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return Reading{}, errors.Wrapf(ErrNotReady, "%s after %v", device, r.ReadyTimeout)
			}
			return Reading{}, errors.Wrapf(err, "waiting for %s", device)
		}
		if lines, err = r.sample(path); err != nil {
			return Reading{}, err
		}
	}

	return parseSample(device, lines)
}

func (r *Reader) wait(ctx context.Context) error {
	interval := r.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// sample reads every line of the data file. The file is closed before returning.
func (r *Reader) sample(path string) ([]string, error) {
	open := r.open
	if open == nil {
		open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}

	f, err := open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed reading %s", path)
	}
	if len(lines) == 0 {
		return nil, errors.Errorf("empty sample in %s", path)
	}
	return lines, nil
}

func ready(lines []string) bool {
	return strings.HasSuffix(strings.TrimSpace(lines[0]), readyMarker)
}

func parseSample(device string, lines []string) (Reading, error) {
	if len(lines) < 2 {
		return Reading{}, errors.Errorf("truncated sample from %s: %d line(s)", device, len(lines))
	}

	pos := strings.Index(lines[1], valueMarker)
	if pos == -1 {
		return Reading{}, nil
	}

	raw := strings.TrimSpace(lines[1][pos+len(valueMarker):])
	milli, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Reading{}, errors.Wrapf(err, "failed converting %q to milli °C for %s", raw, device)
	}
	return FromMilliCelsius(milli), nil
}
