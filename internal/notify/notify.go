// Package notify emits the one-shot cue when a focus session
// completes. Notification failures are never surfaced.
package notify

import (
	"io"
	"os"
)

// Sink receives completion cues.
type Sink interface {
	SessionComplete()
}

// TerminalBell rings the terminal bell.
type TerminalBell struct {
	w io.Writer
}

func NewTerminalBell() *TerminalBell {
	return &TerminalBell{w: os.Stdout}
}

func NewTerminalBellTo(w io.Writer) *TerminalBell {
	return &TerminalBell{w: w}
}

func (b *TerminalBell) SessionComplete() {
	// Write errors are swallowed on purpose.
	_, _ = b.w.Write([]byte("\a"))
}

// Silent discards all cues. Used in tests and when the host terminal
// has no business beeping.
type Silent struct{}

func (Silent) SessionComplete() {}
