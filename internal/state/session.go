package state

import (
	"time"

	"github.com/five82/thermodial/internal/sensor"
)

// NoSensorLabel is shown in place of a device identifier when none was found.
const NoSensorLabel = "No Sensor Found"

// Unit selects which half of a reading is displayed.
type Unit int

const (
	UnitFahrenheit Unit = iota
	UnitCelsius
)

func (u Unit) String() string {
	if u == UnitCelsius {
		return "degC"
	}
	return "degF"
}

// Symbol returns the degree label drawn next to values.
func (u Unit) Symbol() string {
	if u == UnitCelsius {
		return "°C"
	}
	return "°F"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == UnitCelsius {
		return UnitFahrenheit
	}
	return UnitCelsius
}

// Pick returns the reading's value in this unit.
func (u Unit) Pick(r sensor.Reading) (float64, bool) {
	if !r.Valid {
		return 0, false
	}
	if u == UnitCelsius {
		return r.Celsius, true
	}
	return r.Fahrenheit, true
}

// Session is the state owned by the window: the devices found at startup, the
// one currently read, the selected unit and the outcome of the latest poll.
type Session struct {
	devices []string
	current string
	unit    Unit

	reading             sensor.Reading
	lastErr             error
	lastUpdated         time.Time
	consecutiveFailures int
}

// NewSession starts on the first discovered device, or none.
func NewSession(devices []string) Session {
	s := Session{devices: append([]string(nil), devices...)}
	if len(s.devices) > 0 {
		s.current = s.devices[0]
	}
	return s
}

// Devices returns the startup snapshot of device identifiers.
func (s Session) Devices() []string {
	return append([]string(nil), s.devices...)
}

// Current returns the active device identifier, empty when there is none.
func (s Session) Current() string {
	return s.current
}

// Label is the status text for the active device.
func (s Session) Label() string {
	if s.current == "" {
		return NoSensorLabel
	}
	return s.current
}

// Select makes devices[index] current. It reports false and changes nothing
// when index is out of range. The previous device's reading is dropped.
func (s *Session) Select(index int) bool {
	if index < 0 || index >= len(s.devices) {
		return false
	}
	s.current = s.devices[index]
	s.reading = sensor.Reading{}
	s.lastErr = nil
	s.consecutiveFailures = 0
	return true
}

func (s Session) Unit() Unit {
	return s.unit
}

// SetUnit reports whether the unit changed.
func (s *Session) SetUnit(u Unit) bool {
	if s.unit == u {
		return false
	}
	s.unit = u
	return true
}

// Record stores the outcome of a poll of device. Results for a device that is
// no longer current are ignored and Record reports false. On error the
// previous reading is kept and the error recorded.
func (s *Session) Record(device string, r sensor.Reading, err error, at time.Time) bool {
	if device != s.current {
		return false
	}
	s.lastUpdated = at
	if err != nil {
		s.lastErr = err
		s.consecutiveFailures++
		return true
	}
	s.reading = r
	s.lastErr = nil
	s.consecutiveFailures = 0
	return true
}

// Display returns the value to show on the dial for the current unit.
func (s Session) Display() (float64, bool) {
	return s.unit.Pick(s.reading)
}

func (s Session) Reading() sensor.Reading {
	return s.reading
}

func (s Session) LastError() error {
	return s.lastErr
}

func (s Session) LastUpdated() time.Time {
	return s.lastUpdated
}

func (s Session) ConsecutiveFailures() int {
	return s.consecutiveFailures
}

// IsStalled returns true when the sensor has failed several polls in a row.
func (s Session) IsStalled() bool {
	return s.consecutiveFailures >= 2
}
