package service

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/portfolio-json-api/internal/apperrors"
	"github.com/ndewijer/portfolio-json-api/internal/model"
	"github.com/ndewijer/portfolio-json-api/internal/repository"
)

// PortfolioService handles portfolio-related business logic operations.
// It assigns identity and timestamps and applies create/delete to the full
// collection loaded from the repository.
//
// Each load-modify-save cycle holds mu, so two concurrent writers cannot
// overwrite each other's changes. Reads do not take the lock.
type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// NewPortfolioService creates a new PortfolioService with the provided repository.
func NewPortfolioService(portfolioRepo *repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// GetAllPortfolios returns the whole collection in insertion order.
// No filtering, sorting or pagination is applied.
func (s *PortfolioService) GetAllPortfolios() []model.Portfolio {
	return s.portfolioRepo.GetPortfolios()
}

// CreatePortfolio stores a new portfolio built from the caller's fields.
// The generated id, createdAt and updatedAt override any caller-supplied
// values with the same keys.
func (s *PortfolioService) CreatePortfolio(fields map[string]any) (model.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolios := s.portfolioRepo.GetPortfolios()

	portfolio := model.NewPortfolio(fields, s.newID(), s.now())
	portfolios = append(portfolios, portfolio)

	if err := s.portfolioRepo.SavePortfolios(portfolios); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToSavePortfolios, err)
	}

	return portfolio, nil
}

// DeletePortfolio removes the first portfolio whose id matches and returns it.
// Returns apperrors.ErrPortfolioNotFound when no record has that id.
func (s *PortfolioService) DeletePortfolio(id string) (model.Portfolio, error) {
	if id == "" {
		return nil, apperrors.ErrPortfolioNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	portfolios := s.portfolioRepo.GetPortfolios()

	idx := slices.IndexFunc(portfolios, func(p model.Portfolio) bool {
		return p.ID() == id
	})
	if idx == -1 {
		return nil, apperrors.ErrPortfolioNotFound
	}

	deleted := portfolios[idx]
	portfolios = slices.Delete(portfolios, idx, idx+1)

	if err := s.portfolioRepo.SavePortfolios(portfolios); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToSavePortfolios, err)
	}

	return deleted, nil
}
