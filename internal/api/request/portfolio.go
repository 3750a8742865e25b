// Package request decodes incoming request bodies.
package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ndewijer/portfolio-json-api/internal/apperrors"
)

// MaxBodyBytes caps the size of a portfolio payload.
const MaxBodyBytes = 1 << 20

// DecodePortfolioPayload reads the request body as an arbitrary JSON object.
// An empty body is treated as an empty object. Anything that is not a single
// JSON object yields an error wrapping apperrors.ErrInvalidPayload.
func DecodePortfolioPayload(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidPayload, err)
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", apperrors.ErrInvalidPayload, MaxBodyBytes)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidPayload, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", apperrors.ErrInvalidPayload)
	}

	fields, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", apperrors.ErrInvalidPayload)
	}

	return fields, nil
}
