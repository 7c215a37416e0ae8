package cli

import (
	"fmt"
	"path/filepath"

	"focusflow/internal/backup"
	"focusflow/internal/storage"
)

// localStore reports whether the configured store is file-backed.
// The remote document store has nothing local to back up.
func localStore(store storage.Provider) bool {
	_, isRest := store.(*storage.RestStore)
	return !isRest
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if !localStore(ctx.Store) {
		return fmt.Errorf("backups only apply to local stores")
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	if !localStore(ctx.Store) {
		return fmt.Errorf("backups only apply to local stores")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}
