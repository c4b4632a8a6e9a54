package prompter

import (
	"math"
	"time"
)

const (
	// MinSpeed and MaxSpeed bound the scroll speed in lines per second
	MinSpeed = 0.5
	MaxSpeed = 20.0
	// SpeedStep is the change applied by SpeedUp and SpeedDown
	SpeedStep = 0.5
	// DefaultVisibleLines is assumed until the first layout pass reports the
	// real viewport height
	DefaultVisibleLines = 24
)

// Engine owns playback state: the fractional scroll offset, the speed, the
// paused flag and the timestamp the next Advance measures from.
type Engine struct {
	clock  Clock
	offset float64
	speed  float64
	paused bool
	last   time.Time

	totalLines   int
	visibleLines int
}

// NewEngine creates a playing engine at offset 0 sized for totalLines of
// content.
func NewEngine(speed float64, totalLines int, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{
		clock:        clock,
		speed:        ClampSpeed(speed),
		last:         clock.Now(),
		totalLines:   max(totalLines, 0),
		visibleLines: DefaultVisibleLines,
	}
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) {
		return MinSpeed
	}
	return math.Min(MaxSpeed, math.Max(MinSpeed, speed))
}

// Offset returns the fractional scroll offset.
func (e *Engine) Offset() float64 { return e.offset }

// Speed returns the current speed in lines per second.
func (e *Engine) Speed() float64 { return e.speed }

// Paused reports whether playback is paused.
func (e *Engine) Paused() bool { return e.paused }

// SetExtent records the content length and viewport height the scroll
// bounds are derived from.
func (e *Engine) SetExtent(totalLines, visibleLines int) {
	e.totalLines = max(totalLines, 0)
	e.visibleLines = max(visibleLines, 0)
}

// MaxScroll is the largest reachable offset. It equals the end-of-content
// boundary so the last line can leave the screen entirely.
func (e *Engine) MaxScroll() float64 {
	return float64(e.totalLines + e.visibleLines)
}

// Finished reports whether the offset has reached the end-of-content boundary.
func (e *Engine) Finished() bool {
	return e.offset >= e.MaxScroll()
}

// Advance moves the offset forward by speed times the time elapsed since the
// previous update. A paused engine only refreshes its reference timestamp so
// resuming does not jump. It returns true once the content has scrolled off.
func (e *Engine) Advance(now time.Time) bool {
	if e.paused {
		e.last = now
		return false
	}

	elapsed := now.Sub(e.last).Seconds()
	e.last = now
	if elapsed > 0 {
		e.offset += e.speed * elapsed
	}

	return e.Finished()
}

// TogglePause flips between playing and paused.
func (e *Engine) TogglePause() {
	e.paused = !e.paused
	if !e.paused {
		e.last = e.clock.Now()
	}
}

// SpeedUp raises the speed by one step.
func (e *Engine) SpeedUp() {
	e.speed = ClampSpeed(e.speed + SpeedStep)
}

// SpeedDown lowers the speed by one step.
func (e *Engine) SpeedDown() {
	e.speed = ClampSpeed(e.speed - SpeedStep)
}

// ScrollUp moves back one line, stopping at the start.
func (e *Engine) ScrollUp() {
	e.offset = math.Max(0, e.offset-1)
}

// ScrollDown moves forward one line, stopping at MaxScroll.
func (e *Engine) ScrollDown() {
	e.offset = math.Min(e.MaxScroll(), e.offset+1)
}

// JumpTo places the offset at the given line, clamped to [0, MaxScroll].
func (e *Engine) JumpTo(offset float64) {
	e.offset = math.Min(e.MaxScroll(), math.Max(0, offset))
}

// Reset returns to the start without changing the paused state.
func (e *Engine) Reset() {
	e.offset = 0
	e.last = e.clock.Now()
}
