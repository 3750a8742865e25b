package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ndewijer/portfolio-json-api/internal/database"
)

// SetupTestDataFile creates a fresh data file in a per-test temp directory.
// The directory is removed automatically when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    file := testutil.SetupTestDataFile(t)
//	    // file.Path holds "[]"
//	}
func SetupTestDataFile(t *testing.T) *database.DataFile {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portfolios.json")

	file, err := database.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test data file: %v", err)
	}

	return file
}

// WriteRawDataFile replaces the data file contents verbatim.
// Useful for simulating corrupt or hand-edited files.
func WriteRawDataFile(t *testing.T, file *database.DataFile, contents string) {
	t.Helper()

	//nolint:gosec // G306: test fixture
	if err := os.WriteFile(file.Path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write test data file: %v", err)
	}
}

// ReadRawDataFile returns the data file contents verbatim.
func ReadRawDataFile(t *testing.T, file *database.DataFile) string {
	t.Helper()

	data, err := os.ReadFile(file.Path)
	if err != nil {
		t.Fatalf("Failed to read test data file: %v", err)
	}
	return string(data)
}

// BreakDataDirectory removes the directory holding the data file so that
// subsequent saves fail.
func BreakDataDirectory(t *testing.T, file *database.DataFile) {
	t.Helper()

	if err := os.RemoveAll(filepath.Dir(file.Path)); err != nil {
		t.Fatalf("Failed to remove data directory: %v", err)
	}
}
