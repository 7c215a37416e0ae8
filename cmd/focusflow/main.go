package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"focusflow/internal/auth"
	"focusflow/internal/cli"
	"focusflow/internal/config"
	"focusflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store file path." type:"path" default:"~/.config/focusflow/focusflow.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize focusflow storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log     cli.LogCmd     `cmd:"" help:"Log a block of work done off the timer."`
	Journal cli.JournalCmd `cmd:"" help:"Submit today's journal entry."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show progress totals and streak."`
	Login   cli.LoginCmd   `cmd:"" help:"Log in and switch the active principal."`
	Logout  cli.LogoutCmd  `cmd:"" help:"Log out."`
	Whoami  cli.WhoamiCmd  `cmd:"" help:"Show the active principal."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run environment diagnostics."`
	Backup  struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Create a backup of the local store."`
		List   cli.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("focusflow"),
		kong.Description("Productivity timer with daily journaling and progress tracking"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	configDir := filepath.Dir(CLI.Store)

	appCtx := &cli.Context{
		Store:  newStore(cfg, CLI.Store),
		Auth:   newAuthProvider(cfg, configDir),
		Config: cfg,
		Log:    log,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newStore picks the persistence backend: an explicit
// FOCUSFLOW_BACKEND wins, otherwise the store path extension decides.
func newStore(cfg *config.Config, path string) storage.Provider {
	switch cfg.Backend {
	case "rest":
		return storage.NewRestStore(cfg.APIURL, cfg.APIToken, cfg.PollInterval)
	case "json":
		return storage.NewJSONStore(path)
	case "sqlite":
		return storage.NewSQLiteStore(path)
	}
	if strings.HasSuffix(path, ".json") {
		return storage.NewJSONStore(path)
	}
	return storage.NewSQLiteStore(path)
}

func newAuthProvider(cfg *config.Config, configDir string) auth.Provider {
	if cfg.DeviceFlowConfigured() {
		return auth.NewDeviceFlowProvider(configDir, cfg, os.Stdout)
	}
	return auth.NewLocalProvider(configDir)
}

// newLogger writes diagnostics somewhere that does not fight the TUI
// for the terminal: a log file when configured, stderr in debug mode,
// nowhere otherwise.
func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			return zerolog.New(f).With().Timestamp().Logger()
		}
	}
	if cfg.Debug {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.Nop()
}
