package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")
)

// Request errors indicate that the caller sent something the API cannot read.
var (
	// ErrInvalidPayload indicates a request body that is not a JSON object.
	ErrInvalidPayload = errors.New("invalid JSON payload")
)

// Operation failure errors represent system-level failures when reading or writing the data file.
var (
	ErrFailedToSavePortfolios = errors.New("failed to save portfolios")
	ErrFailedToCreateDataFile = errors.New("failed to create data file")
	ErrFailedToBackup         = errors.New("failed to back up data file")
)
