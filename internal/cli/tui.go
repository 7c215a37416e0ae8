package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/backup"
	"focusflow/internal/notify"
	"focusflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	principal, err := ctx.requirePrincipal()
	if err != nil {
		return err
	}
	if _, err := ctx.ensureSettings(principal.ID, time.Now()); err != nil {
		return err
	}

	// Automatic backup before the session starts mutating the store.
	// Failures are diagnostic only.
	if localStore(ctx.Store) {
		if _, err := backup.NewManager(ctx.Store.GetConfigPath()).CreateBackup(); err != nil {
			ctx.Log.Warn().Err(err).Msg("automatic backup failed")
		}
	}

	model := tui.NewModel(ctx.Store, ctx.Auth, principal, notify.NewTerminalBell(), ctx.Log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	return nil
}
