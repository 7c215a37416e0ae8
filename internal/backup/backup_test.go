package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func setupStoreFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "focusflow.json")
	if err := os.WriteFile(path, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	storePath := setupStoreFile(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup file unreadable: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content mismatch: %s", data)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup should keep the store extension, got %s", backupPath)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("expected error for missing store file")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	storePath := setupStoreFile(t)
	mgr := NewManager(storePath)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first backup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second backup failed: %v", err)
	}
	if first == second {
		t.Error("backups in the same second must get distinct names")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "focusflow.json"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotationPrunesOldBackups(t *testing.T) {
	storePath := setupStoreFile(t)
	mgr := NewManager(storePath)

	// Seed more than MaxBackups files directly so the test does not
	// depend on wall-clock timestamps.
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < MaxBackups+5; i++ {
		name := fmt.Sprintf("%sseed-%02d.json", BackupFilePrefix, i)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
}
