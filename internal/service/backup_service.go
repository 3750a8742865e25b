package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ndewijer/portfolio-json-api/internal/apperrors"
	"github.com/ndewijer/portfolio-json-api/internal/database"
)

const (
	backupPrefix     = "portfolios-"
	backupSuffix     = ".json"
	backupTimeLayout = "20060102T150405.000Z"
)

// BackupService copies the data file into timestamped snapshots and prunes
// old ones. Snapshots can be taken on demand or on a cron schedule.
type BackupService struct {
	file *database.DataFile
	dir  string
	keep int

	cron *cron.Cron
	now  func() time.Time
}

// NewBackupService creates a BackupService writing snapshots to dir and
// keeping at most keep of them. keep <= 0 disables pruning.
func NewBackupService(file *database.DataFile, dir string, keep int) *BackupService {
	return &BackupService{
		file: file,
		dir:  dir,
		keep: keep,
		cron: cron.New(),
		now:  time.Now,
	}
}

// Backup snapshots the current data file and returns the snapshot path.
func (s *BackupService) Backup() (string, error) {
	data, err := os.ReadFile(s.file.Path)
	if err != nil {
		return "", fmt.Errorf("%w: read data file: %w", apperrors.ErrFailedToBackup, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create backup directory: %w", apperrors.ErrFailedToBackup, err)
	}

	name := backupPrefix + s.now().UTC().Format(backupTimeLayout) + backupSuffix
	path := filepath.Join(s.dir, name)
	if err := database.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrFailedToBackup, err)
	}

	if err := s.prune(); err != nil {
		// The snapshot itself succeeded
		log.Printf("failed to prune backups in %s: %v", s.dir, err)
	}

	return path, nil
}

// Backups lists snapshot file names, oldest first.
func (s *BackupService) Backups() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), backupPrefix) && strings.HasSuffix(e.Name(), backupSuffix) {
			names = append(names, e.Name())
		}
	}
	// The timestamp layout sorts lexically in time order
	slices.Sort(names)
	return names, nil
}

func (s *BackupService) prune() error {
	if s.keep <= 0 {
		return nil
	}

	names, err := s.Backups()
	if err != nil {
		return err
	}

	for len(names) > s.keep {
		if err := os.Remove(filepath.Join(s.dir, names[0])); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", names[0], err)
		}
		names = names[1:]
	}
	return nil
}

// Schedule registers a periodic backup using a standard 5-field cron
// expression. An empty expression leaves scheduling disabled.
func (s *BackupService) Schedule(expr string) error {
	if expr == "" {
		return nil
	}

	_, err := s.cron.AddFunc(expr, func() {
		path, err := s.Backup()
		if err != nil {
			log.Printf("Scheduled backup failed: %v", err)
			return
		}
		log.Printf("Backed up data file to %s", path)
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", expr, err)
	}
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *BackupService) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and returns a context that is done once any
// running backup has finished.
func (s *BackupService) Stop() context.Context {
	return s.cron.Stop()
}
