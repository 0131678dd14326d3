package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BackupInfo describes one backup file on disk.
type BackupInfo struct {
	Name      string
	Path      string
	Size      int64
	CreatedAt time.Time
}

// Backup copies the live database file into dir and returns the created
// file's info. The copy is a plain whole-file copy; with WAL enabled a
// checkpoint is taken by SQLite on close, so callers should only back up
// between units of work, which is always the case in this single-user app.
func Backup(dbPath, dir string) (*BackupInfo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	// timestamp + short uuid so two backups in the same second never collide
	name := fmt.Sprintf("erp_backup_%s_%s.db",
		time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	dest := filepath.Join(dir, name)

	if err := copyFile(dbPath, dest); err != nil {
		return nil, fmt.Errorf("copy database: %w", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return nil, fmt.Errorf("stat backup: %w", err)
	}
	return &BackupInfo{
		Name:      name,
		Path:      dest,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

// ListBackups returns the backup files in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var list []BackupInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "erp_backup_") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		list = append(list, BackupInfo{
			Name:      e.Name(),
			Path:      filepath.Join(dir, e.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Restore copies a backup file over the live database path. The running
// process keeps its old connection; the restored data is picked up on the
// next application start.
func Restore(backupPath, dbPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file: %w", err)
	}
	if err := copyFile(backupPath, dbPath); err != nil {
		return fmt.Errorf("restore database: %w", err)
	}
	// stale WAL/SHM files would shadow the restored content
	_ = os.Remove(dbPath + "-wal")
	_ = os.Remove(dbPath + "-shm")
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
