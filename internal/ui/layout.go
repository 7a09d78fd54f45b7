package ui

import "time"

// Timing constants.
const (
	// pollInterval is the fixed period of the sensor update loop.
	pollInterval = time.Second
)
