package testutil

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/ndewijer/portfolio-json-api/internal/database"
	"github.com/ndewijer/portfolio-json-api/internal/repository"
	"github.com/ndewijer/portfolio-json-api/internal/service"
)

func NewTestPortfolioService(t *testing.T, file *database.DataFile) *service.PortfolioService {
	t.Helper()

	portfolioRepo := repository.NewPortfolioRepository(file)

	return service.NewPortfolioService(portfolioRepo)
}

// NewTestBackupService creates a BackupService writing into a temp directory.
func NewTestBackupService(t *testing.T, file *database.DataFile, keep int) *service.BackupService {
	t.Helper()

	return service.NewBackupService(file, filepath.Join(t.TempDir(), "backups"), keep)
}

func NewTestSystemService(t *testing.T) *service.SystemService {
	t.Helper()

	return service.NewSystemService()
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakePortfolioTitle generates a unique portfolio title for testing.
//
// Example usage:
//
//	title := testutil.MakePortfolioTitle("My Site")
//	// Returns: "My Site ABC123"
func MakePortfolioTitle(base string) string {
	if base == "" {
		base = "Portfolio"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
