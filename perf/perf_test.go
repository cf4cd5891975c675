package perf

import (
	"os"
	"testing"

	"github.com/Strum355/log"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	os.Exit(m.Run())
}

func TestMonitor_Toggle(t *testing.T) {
	m := NewMonitor(false)

	assert.False(t, m.Enabled())
	assert.True(t, m.Toggle())
	assert.True(t, m.Enabled())
	assert.False(t, m.Toggle())
	assert.False(t, m.Enabled())
}

func TestTimer_StopWhenEnabled(t *testing.T) {
	m := NewMonitor(true)

	timer := m.Start("test-op")
	assert.NotPanics(t, func() { timer.Stop() })
}

func TestTimer_StopWhenDisabled(t *testing.T) {
	m := NewMonitor(false)

	timer := m.Start("test-op")
	assert.NotPanics(t, func() { timer.Stop() })
}

// A timer keeps the enabled state it was started with, even if the monitor
// is toggled before Stop.
func TestTimer_CapturesEnabledAtStart(t *testing.T) {
	m := NewMonitor(false)

	timer := m.Start("test-op")
	m.Toggle()

	assert.NotPanics(t, func() { timer.Stop() })
}
