package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClockDefaults(t *testing.T) {
	c := NewClock(0, 2)
	assert.Equal(t, float32(24), c.CycleLength())
	assert.Equal(t, float32(0.01), c.TimeOfDay())
	assert.False(t, c.Paused())
}

func TestAdvanceScalesByLifecycle(t *testing.T) {
	// 24 real minutes per 24h cycle: one real minute is one cycle hour.
	c := NewClock(24, 24)
	c.ResumeAt(0)
	got := c.Advance(60)
	assert.InDelta(t, 1.0, got, 1e-5)
	assert.InDelta(t, 1.0/24, c.Normalized(), 1e-6)
}

func TestAdvanceClampsAndWraps(t *testing.T) {
	c := NewClock(24, 1)
	c.ResumeAt(23)
	got := c.Advance(3600)
	assert.Equal(t, float32(24), got)
	assert.Equal(t, float32(1), c.Normalized())

	require.True(t, c.Wrap())
	assert.Equal(t, float32(0.01), c.TimeOfDay())
	assert.False(t, c.Wrap())
}

func TestPausedClockDoesNotMove(t *testing.T) {
	c := NewClock(24, 1)
	c.PauseAt(12)
	assert.Equal(t, float32(12), c.Advance(30))
	assert.True(t, c.Paused())

	c.Resume()
	assert.Greater(t, c.Advance(30), float32(12))
}

func TestPauseAtClampsToCycle(t *testing.T) {
	c := NewClock(24, 1)
	c.PauseAt(30)
	assert.Equal(t, float32(24), c.TimeOfDay())
	c.PauseAt(-2)
	assert.Equal(t, float32(0), c.TimeOfDay())
}

func TestNonPositiveLifecycle(t *testing.T) {
	c := NewClock(24, 0)
	assert.Equal(t, float32(0.01), c.LifecycleDuration())
}

func TestSyncWithServerTime(t *testing.T) {
	// 2 minute cycles: 00:03:00 is half way through the second cycle.
	c := NewClock(24, 2)
	c.SyncWithServerTime(time.Date(2024, 1, 1, 0, 3, 0, 0, time.UTC))
	assert.InDelta(t, 12.0, c.TimeOfDay(), 1e-4)

	// 60 minute cycles: 10:15 is a quarter into the hour.
	c = NewClock(24, 60)
	c.SyncWithServerTime(time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC))
	assert.InDelta(t, 6.0, c.TimeOfDay(), 1e-4)
}
