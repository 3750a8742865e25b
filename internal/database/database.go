package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = ".portfolios-tmp-"

	filePerm = 0o644
	dirPerm  = 0o755
)

// emptyCollection is written to a data file that does not exist yet.
var emptyCollection = []byte("[]")

// DataFile is the single JSON file that holds the whole portfolio collection.
type DataFile struct {
	Path string
}

// Open makes sure the data file exists, creating it (and its parent
// directory) with an empty JSON array when it is absent.
func Open(path string) (*DataFile, error) {
	if path == "" {
		return nil, errors.New("data file path is empty")
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		// Already present, leave its contents alone.
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		if err := WriteFileAtomic(path, emptyCollection); err != nil {
			return nil, fmt.Errorf("failed to create data file: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	return &DataFile{Path: path}, nil
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file
// and then renaming it to the target filename.
func WriteFileAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	// Temp file must live in the same directory for the rename to be atomic
	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
