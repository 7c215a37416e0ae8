package timer

import (
	"testing"
	"time"
)

func runToZero(t *testing.T, tm *Timer, now time.Time) []Completion {
	t.Helper()

	var events []Completion
	for i := 0; i < tm.Mode().Duration()+10; i++ {
		ev, ok := tm.Tick(now)
		if ok {
			events = append(events, ev)
		}
		if !tm.Running() {
			break
		}
	}
	return events
}

func TestFocusSessionEmitsSingleCompletion(t *testing.T) {
	tm := New()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tm.Toggle()
	events := runToZero(t, tm, now)

	if len(events) != 1 {
		t.Fatalf("expected exactly 1 completion, got %d", len(events))
	}
	if events[0].DurationSeconds != FocusDuration {
		t.Errorf("expected duration %d, got %d", FocusDuration, events[0].DurationSeconds)
	}
	if tm.Running() {
		t.Error("timer should stop at zero")
	}
	if !tm.JustFinished() {
		t.Error("expected just-finished flag after expiry")
	}
	if tm.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", tm.Remaining())
	}
}

func TestBreakSessionEmitsNothing(t *testing.T) {
	tm := New()
	tm.SelectMode(ModeShort)
	tm.Toggle()

	events := runToZero(t, tm, time.Now())

	if len(events) != 0 {
		t.Fatalf("break expiry should not log work, got %d events", len(events))
	}
	if !tm.JustFinished() {
		t.Error("expected just-finished flag after break expiry")
	}
}

func TestSelectModeWhileRunningDiscardsProgress(t *testing.T) {
	tm := New()
	tm.Toggle()
	now := time.Now()
	for i := 0; i < 300; i++ {
		tm.Tick(now)
	}
	if tm.Remaining() != FocusDuration-300 {
		t.Fatalf("expected %d remaining, got %d", FocusDuration-300, tm.Remaining())
	}

	tm.SelectMode(ModeShort)

	if tm.Running() {
		t.Error("mode switch should stop the countdown")
	}
	if tm.Remaining() != ShortDuration {
		t.Errorf("expected %d remaining after switch, got %d", ShortDuration, tm.Remaining())
	}

	// The abandoned focus session must not emit anything.
	if _, ok := tm.Tick(now); ok {
		t.Error("paused timer must not tick")
	}
}

func TestToggle(t *testing.T) {
	tm := New()
	if tm.Running() {
		t.Fatal("new timer should be paused")
	}
	tm.Toggle()
	if !tm.Running() {
		t.Fatal("toggle should start")
	}
	tm.Toggle()
	if tm.Running() {
		t.Fatal("toggle should pause")
	}
}

func TestToggleClearsJustFinished(t *testing.T) {
	tm := New()
	tm.SelectMode(ModeShort)
	tm.Toggle()
	runToZero(t, tm, time.Now())
	if !tm.JustFinished() {
		t.Fatal("expected just-finished flag")
	}

	tm.Toggle()
	if tm.JustFinished() {
		t.Error("starting should clear the just-finished flag")
	}
}

func TestToggleAfterExpiryRestartsFullDuration(t *testing.T) {
	tm := New()
	tm.SelectMode(ModeShort)
	tm.Toggle()
	runToZero(t, tm, time.Now())
	if tm.Remaining() != 0 {
		t.Fatalf("expected expired countdown, got %d remaining", tm.Remaining())
	}

	tm.Toggle()
	if !tm.Running() {
		t.Fatal("toggle should start after expiry")
	}
	if tm.Remaining() != ShortDuration {
		t.Fatalf("expected restart at full duration, got %d", tm.Remaining())
	}

	// The restarted countdown must actually advance.
	tm.Tick(time.Now())
	if tm.Remaining() != ShortDuration-1 {
		t.Errorf("restarted countdown did not tick: %d remaining", tm.Remaining())
	}
}

func TestReset(t *testing.T) {
	tm := New()
	tm.Toggle()
	now := time.Now()
	for i := 0; i < 100; i++ {
		tm.Tick(now)
	}

	tm.Reset()

	if tm.Running() {
		t.Error("reset should stop the countdown")
	}
	if tm.Remaining() != FocusDuration {
		t.Errorf("expected full duration after reset, got %d", tm.Remaining())
	}
}

func TestTickWhilePausedIsNoOp(t *testing.T) {
	tm := New()
	if _, ok := tm.Tick(time.Now()); ok {
		t.Error("paused timer emitted a completion")
	}
	if tm.Remaining() != FocusDuration {
		t.Errorf("paused tick changed remaining time: %d", tm.Remaining())
	}
}

func TestProgress(t *testing.T) {
	tm := New()
	if got := tm.Progress(); got != 0 {
		t.Errorf("expected progress 0, got %f", got)
	}

	tm.Toggle()
	now := time.Now()
	for i := 0; i < FocusDuration/2; i++ {
		tm.Tick(now)
	}
	if got := tm.Progress(); got != 0.5 {
		t.Errorf("expected progress 0.5, got %f", got)
	}

	for i := 0; i < FocusDuration; i++ {
		tm.Tick(now)
	}
	if got := tm.Progress(); got != 1 {
		t.Errorf("expected progress 1, got %f", got)
	}
}

func TestManualCompletion(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	ev, ok := ManualCompletion(25, now)
	if !ok {
		t.Fatal("expected manual completion for 25 minutes")
	}
	if ev.DurationSeconds != 1500 {
		t.Errorf("expected 1500s, got %d", ev.DurationSeconds)
	}
	if !ev.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, ev.Timestamp)
	}

	if _, ok := ManualCompletion(0, now); ok {
		t.Error("zero minutes should be rejected")
	}
	if _, ok := ManualCompletion(-5, now); ok {
		t.Error("negative minutes should be rejected")
	}
}

func TestManualCompletionLeavesCountdownAlone(t *testing.T) {
	tm := New()
	tm.Toggle()
	now := time.Now()
	for i := 0; i < 10; i++ {
		tm.Tick(now)
	}
	before := tm.Remaining()

	ManualCompletion(25, now)

	if tm.Remaining() != before {
		t.Error("manual log must not alter countdown state")
	}
	if !tm.Running() {
		t.Error("manual log must not stop the countdown")
	}
}

func TestModeDurations(t *testing.T) {
	cases := []struct {
		mode Mode
		want int
	}{
		{ModeFocus, 1500},
		{ModeShort, 300},
		{ModeLong, 900},
	}
	for _, c := range cases {
		if got := c.mode.Duration(); got != c.want {
			t.Errorf("%s: expected %d, got %d", c.mode, c.want, got)
		}
	}
}
