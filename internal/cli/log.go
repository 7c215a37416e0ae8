package cli

import (
	"fmt"
	"time"

	"focusflow/internal/stats"
	"focusflow/internal/timer"
)

// LogCmd records a block of work done away from the timer.
type LogCmd struct {
	Minutes int `arg:"" help:"Length of the completed work block in minutes."`
}

func (c *LogCmd) Validate() error {
	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be a positive integer")
	}
	return nil
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	principal, err := ctx.requirePrincipal()
	if err != nil {
		return err
	}
	now := time.Now()
	if _, err := ctx.ensureSettings(principal.ID, now); err != nil {
		return err
	}

	ev, ok := timer.ManualCompletion(c.Minutes, now)
	if !ok {
		return fmt.Errorf("minutes must be a positive integer")
	}
	if err := ctx.Store.AddWorkLog(principal.ID, newWorkLog(ev)); err != nil {
		return fmt.Errorf("failed to save work log: %w", err)
	}

	logs, err := ctx.Store.GetAllWorkLogs(principal.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s. Today: %s\n",
		stats.FormatDuration(ev.DurationSeconds),
		stats.FormatDuration(stats.TodayTotal(logs, now)))
	return nil
}
