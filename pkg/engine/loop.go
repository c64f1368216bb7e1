// pkg/engine/loop.go
package engine

import (
	"math"
	"time"
)

// Loop is the fixed-timestep accumulator. Scaled frame time goes in and
// a whole number of ticks comes out; the remainder carries to the next
// frame.
type Loop struct {
	TickDuration float64
	MaxCatchUp   int
	accumulator  float64
}

// NewLoop creates an accumulator for the given tick length and catch-up cap
func NewLoop(tickDuration float64, maxCatchUp int) *Loop {
	return &Loop{
		TickDuration: tickDuration,
		MaxCatchUp:   maxCatchUp,
	}
}

// Accumulate adds dt seconds and returns how many ticks are due. When
// more than MaxCatchUp ticks are owed the backlog is dropped and clamped
// reports true.
func (l *Loop) Accumulate(dt float64) (ticks int, clamped bool) {
	if dt > 0 && !math.IsInf(dt, 1) {
		l.accumulator += dt
	}

	for l.accumulator >= l.TickDuration {
		if l.MaxCatchUp > 0 && ticks >= l.MaxCatchUp {
			l.accumulator = math.Mod(l.accumulator, l.TickDuration)
			return ticks, true
		}
		l.accumulator -= l.TickDuration
		ticks++
	}
	return ticks, false
}

// Pending returns the time carried over to the next frame.
func (l *Loop) Pending() float64 {
	return l.accumulator
}

// Reset drops any carried time.
func (l *Loop) Reset() {
	l.accumulator = 0
}

// FrameClock measures wall-clock time between frames for the driver.
type FrameClock struct {
	last time.Time
	max  float64
	now  func() time.Time
}

// NewFrameClock creates a clock that caps a single frame at maxFrame
// seconds. A zero cap disables capping.
func NewFrameClock(maxFrame float64) *FrameClock {
	return &FrameClock{last: time.Now(), max: maxFrame, now: time.Now}
}

// Elapsed returns seconds since the previous call.
func (c *FrameClock) Elapsed() float64 {
	now := c.now()
	delta := now.Sub(c.last).Seconds()
	c.last = now

	return clampFrame(delta, c.max)
}

// MaxFrameTime caps a single frame's elapsed time after a stall, so one
// integration step cannot carry a projectile past a hazard unchecked.
const MaxFrameTime = 0.25

// ClampFrame bounds a driver-reported frame time to [0, MaxFrameTime].
// Non-finite values count as no time.
func ClampFrame(dt float64) float64 {
	return clampFrame(dt, MaxFrameTime)
}

func clampFrame(dt, max float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
