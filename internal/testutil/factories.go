package testutil

import (
	"testing"
	"time"

	"github.com/ndewijer/portfolio-json-api/internal/database"
	"github.com/ndewijer/portfolio-json-api/internal/model"
	"github.com/ndewijer/portfolio-json-api/internal/repository"
)

// PortfolioBuilder provides a fluent interface for creating test portfolios.
// Build appends the record straight to the data file, bypassing the service.
//
// Example usage:
//
//	// Simple creation with defaults
//	portfolio := testutil.NewPortfolio().Build(t, file)
//
//	// Customized portfolio
//	portfolio := testutil.NewPortfolio().
//	    WithTitle("Custom Portfolio").
//	    WithField("tags", []any{"go"}).
//	    Build(t, file)
type PortfolioBuilder struct {
	ID        string
	CreatedAt time.Time
	Fields    map[string]any
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults.
func NewPortfolio() *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:        MakeID(),
		CreatedAt: time.Now(),
		Fields: map[string]any{
			"title":       MakePortfolioTitle("Test Portfolio"),
			"description": "Test description",
		},
	}
}

// WithID sets a custom ID.
func (b *PortfolioBuilder) WithID(id string) *PortfolioBuilder {
	b.ID = id
	return b
}

// WithTitle sets a custom title.
func (b *PortfolioBuilder) WithTitle(title string) *PortfolioBuilder {
	b.Fields["title"] = title
	return b
}

// WithField sets an arbitrary caller field.
func (b *PortfolioBuilder) WithField(key string, value any) *PortfolioBuilder {
	b.Fields[key] = value
	return b
}

// WithCreatedAt sets the creation time.
func (b *PortfolioBuilder) WithCreatedAt(ts time.Time) *PortfolioBuilder {
	b.CreatedAt = ts
	return b
}

// Build appends the portfolio to the data file and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, file *database.DataFile) model.Portfolio {
	t.Helper()

	repo := repository.NewPortfolioRepository(file)
	portfolio := model.NewPortfolio(b.Fields, b.ID, b.CreatedAt)

	portfolios := append(repo.GetPortfolios(), portfolio)
	if err := repo.SavePortfolios(portfolios); err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return portfolio
}

// Convenience functions

// CreatePortfolio creates a portfolio with the given title and default values.
//
// Example usage:
//
//	portfolio := testutil.CreatePortfolio(t, file, "My Portfolio")
func CreatePortfolio(t *testing.T, file *database.DataFile, title string) model.Portfolio {
	t.Helper()
	return NewPortfolio().WithTitle(title).Build(t, file)
}

// CreatePortfolios creates multiple portfolios with unique titles.
//
// Example usage:
//
//	portfolios := testutil.CreatePortfolios(t, file, 5)
//	// Creates 5 portfolios with auto-generated titles
func CreatePortfolios(t *testing.T, file *database.DataFile, count int) []model.Portfolio {
	t.Helper()

	portfolios := make([]model.Portfolio, count)
	for i := 0; i < count; i++ {
		portfolios[i] = NewPortfolio().Build(t, file)
	}
	return portfolios
}
