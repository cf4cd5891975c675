package perf

import (
	"strconv"
	"time"

	"github.com/Strum355/log"
)

// Monitor gates operation timing. It starts from the configured default and
// can be toggled at runtime from the control loop.
type Monitor struct {
	enabled bool
}

func NewMonitor(enabled bool) *Monitor {
	return &Monitor{enabled: enabled}
}

func (m *Monitor) Enabled() bool {
	return m.enabled
}

// Toggle flips timing on or off and returns the new state.
func (m *Monitor) Toggle() bool {
	m.enabled = !m.enabled
	return m.enabled
}

// Start begins timing an operation. Stop on the returned timer logs the
// elapsed time; when the monitor is disabled the timer is inert.
func (m *Monitor) Start(operation string) *Timer {
	return &Timer{
		operation: operation,
		start:     time.Now(),
		enabled:   m.enabled,
	}
}

type Timer struct {
	operation string
	start     time.Time
	enabled   bool
}

// Stop logs the elapsed microseconds for the timed operation.
func (t *Timer) Stop() {
	if !t.enabled {
		return
	}
	log.WithFields(log.Fields{
		"operation":   t.operation,
		"duration_us": strconv.FormatInt(time.Since(t.start).Microseconds(), 10),
	}).Info("Operation timed")
}
