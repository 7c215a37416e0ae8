// Package timer implements the countdown state machine for work and
// break sessions. It is pure state: the caller drives it with Tick
// once per wall-clock second and persists the completion events it
// returns.
package timer

import "time"

type Mode string

const (
	ModeFocus Mode = "focus"
	ModeShort Mode = "short"
	ModeLong  Mode = "long"
)

const (
	FocusDuration = 25 * 60
	ShortDuration = 5 * 60
	LongDuration  = 15 * 60
)

// Duration returns the full countdown length for m in seconds.
func (m Mode) Duration() int {
	switch m {
	case ModeShort:
		return ShortDuration
	case ModeLong:
		return LongDuration
	default:
		return FocusDuration
	}
}

func (m Mode) Label() string {
	switch m {
	case ModeShort:
		return "Short Break"
	case ModeLong:
		return "Long Break"
	default:
		return "Focus"
	}
}

// Completion is emitted when a focus countdown reaches zero. The
// duration is the mode's full length, not the possibly-drifted elapsed
// wall time.
type Completion struct {
	Mode            Mode
	Timestamp       time.Time
	DurationSeconds int
}

// Timer is a single-session countdown. The zero value is not usable;
// construct with New.
type Timer struct {
	mode         Mode
	remaining    int
	running      bool
	justFinished bool
}

func New() *Timer {
	return &Timer{
		mode:      ModeFocus,
		remaining: FocusDuration,
	}
}

func (t *Timer) Mode() Mode         { return t.mode }
func (t *Timer) Remaining() int     { return t.remaining }
func (t *Timer) Running() bool      { return t.running }
func (t *Timer) JustFinished() bool { return t.justFinished }

// SelectMode switches the timer to m, discarding any progress in the
// current mode. The countdown stops and resets to m's full duration.
func (t *Timer) SelectMode(m Mode) {
	t.mode = m
	t.remaining = m.Duration()
	t.running = false
	t.justFinished = false
}

// Toggle starts the countdown if paused and pauses it if running.
// Starting clears the just-finished flag from a previous session;
// starting an expired countdown restarts it at the mode's full
// duration.
func (t *Timer) Toggle() {
	if t.running {
		t.running = false
		return
	}
	if t.remaining <= 0 {
		t.remaining = t.mode.Duration()
	}
	t.justFinished = false
	t.running = true
}

// Reset returns the countdown to the current mode's full duration and
// stops it.
func (t *Timer) Reset() {
	t.remaining = t.mode.Duration()
	t.running = false
	t.justFinished = false
}

// Tick advances the countdown by one second. It must be called at most
// once per wall-clock second while the timer is running; calls while
// paused are no-ops. When the countdown reaches exactly zero the timer
// stops, and if the mode is focus a single Completion stamped with now
// is returned. Break sessions expire without emitting anything.
func (t *Timer) Tick(now time.Time) (Completion, bool) {
	if !t.running || t.remaining <= 0 {
		return Completion{}, false
	}

	t.remaining--
	if t.remaining > 0 {
		return Completion{}, false
	}

	t.running = false
	t.justFinished = true

	if t.mode != ModeFocus {
		return Completion{}, false
	}
	return Completion{
		Mode:            ModeFocus,
		Timestamp:       now,
		DurationSeconds: FocusDuration,
	}, true
}

// Progress reports how far the current countdown has advanced, in
// [0, 1].
func (t *Timer) Progress() float64 {
	total := t.mode.Duration()
	return float64(total-t.remaining) / float64(total)
}

// ManualCompletion builds the completion event for a hand-entered work
// block of the given number of minutes. It does not touch countdown
// state. Returns false for non-positive input.
func ManualCompletion(minutes int, now time.Time) (Completion, bool) {
	if minutes <= 0 {
		return Completion{}, false
	}
	return Completion{
		Mode:            ModeFocus,
		Timestamp:       now,
		DurationSeconds: minutes * 60,
	}, true
}
