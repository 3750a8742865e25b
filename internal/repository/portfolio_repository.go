package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ndewijer/portfolio-json-api/internal/database"
	"github.com/ndewijer/portfolio-json-api/internal/model"
)

// PortfolioRepository provides whole-collection access to the portfolio data file.
// There are no partial reads or writes: every save rewrites the entire array.
type PortfolioRepository struct {
	file *database.DataFile
}

// NewPortfolioRepository creates a new PortfolioRepository backed by the given data file.
func NewPortfolioRepository(file *database.DataFile) *PortfolioRepository {
	return &PortfolioRepository{file: file}
}

// GetPortfolios reads and parses the whole data file.
//
// Read and parse failures are logged and reported as an empty collection, so
// callers cannot tell "no portfolios" apart from "file unreadable".
func (s *PortfolioRepository) GetPortfolios() []model.Portfolio {
	data, err := os.ReadFile(s.file.Path)
	if err != nil {
		log.Printf("failed to read portfolios from %s: %v", s.file.Path, err)
		return []model.Portfolio{}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var portfolios []model.Portfolio
	if err := dec.Decode(&portfolios); err != nil {
		log.Printf("failed to parse portfolios from %s: %v", s.file.Path, err)
		return []model.Portfolio{}
	}
	if portfolios == nil {
		return []model.Portfolio{}
	}

	return portfolios
}

// SavePortfolios serializes the full collection as an indented JSON array and
// replaces the data file with it.
func (s *PortfolioRepository) SavePortfolios(portfolios []model.Portfolio) error {
	if portfolios == nil {
		portfolios = []model.Portfolio{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(portfolios); err != nil {
		return fmt.Errorf("failed to encode portfolios: %w", err)
	}

	if err := database.WriteFileAtomic(s.file.Path, bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return fmt.Errorf("failed to write portfolios to %s: %w", s.file.Path, err)
	}

	return nil
}
