// Package backup copies the local store file aside before the app
// starts mutating it. Backups rotate; the oldest are pruned.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// MaxBackups is the number of backup files kept after rotation.
	MaxBackups = 14
	// BackupDirName is the directory next to the store file that
	// holds the copies.
	BackupDirName = "backups"
	// BackupFilePrefix prefixes every backup file name.
	BackupFilePrefix = "focusflow-"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager copies and rotates backups of a single store file. It works
// for both the JSON and the SQLite store; the remote store has nothing
// local to back up.
type Manager struct {
	storePath string
	backupDir string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), BackupDirName),
	}
}

func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup copies the store file into the backup directory and
// prunes old copies. It must run before the store is opened for
// writing.
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store file does not exist: %s", m.storePath)
	}

	ext := filepath.Ext(m.storePath)
	timestamp := time.Now().Format("20060102-150405")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+ext)

	counter := 1
	for {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = filepath.Join(m.backupDir,
			fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, ext))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}

	if err := copyFile(m.storePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy store file: %w", err)
	}
	if err := m.rotate(); err != nil {
		return "", err
	}
	return backupPath, nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, e := range entries {
		if e.IsDir() || len(e.Name()) < len(BackupFilePrefix) ||
			e.Name()[:len(BackupFilePrefix)] != BackupFilePrefix {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, e.Name()),
			Timestamp: fi.ModTime(),
			Size:      fi.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to prune old backup: %w", err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
