package cycle

import (
	"math"
	"time"
)

// minTimeOfDay keeps the clock off zero while running, so a freshly wrapped
// cycle is distinguishable from an unset one.
const minTimeOfDay float32 = 0.01

// Clock is the wrapping time of day that drives the sky, in hours.
// It is advanced explicitly once per tick.
type Clock struct {
	cycleLength       float32
	lifecycleDuration float32 // real-time minutes per full cycle
	normalization     float32 // real seconds per cycle hour
	timeOfDay         float32
	paused            bool
}

// NewClock returns a running clock at the start of the cycle.
func NewClock(cycleLength, lifecycleMinutes float32) *Clock {
	if cycleLength <= 0 {
		cycleLength = 24
	}
	c := &Clock{cycleLength: cycleLength, timeOfDay: minTimeOfDay}
	c.SetLifecycleDuration(lifecycleMinutes)
	return c
}

// SetLifecycleDuration sets how many real minutes one cycle lasts.
// Non-positive durations are raised to 0.01 minutes.
func (c *Clock) SetLifecycleDuration(minutes float32) {
	if minutes <= 0 {
		minutes = 0.01
	}
	c.lifecycleDuration = minutes
	c.normalization = minutes * 60 / c.cycleLength
}

func (c *Clock) LifecycleDuration() float32 { return c.lifecycleDuration }
func (c *Clock) CycleLength() float32       { return c.cycleLength }
func (c *Clock) TimeOfDay() float32         { return c.timeOfDay }
func (c *Clock) Paused() bool               { return c.paused }

// Normalized returns the time of day as a fraction of the cycle, in [0,1].
func (c *Clock) Normalized() float32 {
	n := c.timeOfDay / c.cycleLength
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Advance moves the clock by dt real seconds and returns the new time of day.
// The result stays within [0.01, cycleLength]; a paused clock does not move.
func (c *Clock) Advance(dt float64) float32 {
	if c.paused {
		return c.timeOfDay
	}
	c.timeOfDay += float32(dt) / c.normalization
	if c.timeOfDay < minTimeOfDay {
		c.timeOfDay = minTimeOfDay
	}
	if c.timeOfDay > c.cycleLength {
		c.timeOfDay = c.cycleLength
	}
	return c.timeOfDay
}

// Wrap restarts the cycle once the end has been reached and reports whether it did.
func (c *Clock) Wrap() bool {
	if c.timeOfDay < c.cycleLength {
		return false
	}
	c.timeOfDay = minTimeOfDay
	return true
}

// Pause stops the clock where it is.
func (c *Clock) Pause() {
	c.paused = true
}

// PauseAt stops the clock at t, clamped to the cycle.
func (c *Clock) PauseAt(t float32) {
	c.paused = true
	c.timeOfDay = c.clamp(t)
}

func (c *Clock) Resume() {
	c.paused = false
}

// ResumeAt restarts the clock from t, clamped to the cycle.
func (c *Clock) ResumeAt(t float32) {
	c.paused = false
	c.timeOfDay = c.clamp(t)
}

// SyncWithServerTime positions the clock from wall-clock time so every client
// sharing the same lifecycle duration sees the same sky.
func (c *Clock) SyncWithServerTime(now time.Time) {
	now = now.UTC()
	seconds := float64(now.Second()) + float64(now.Nanosecond())/1e9
	totalMinutes := float64(now.Hour()*60+now.Minute()) + seconds/60

	inCycle := totalMinutes/float64(c.lifecycleDuration) + 1
	_, frac := math.Modf(inCycle)
	c.timeOfDay = float32(frac) * c.cycleLength
}

func (c *Clock) clamp(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > c.cycleLength {
		return c.cycleLength
	}
	return t
}
